package main

import (
	"os"

	"github.com/Tnecniv1/Calcul-Pixel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
