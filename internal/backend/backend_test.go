package backend

import "testing"

func TestResolveWrongIDs_Precedence(t *testing.T) {
	var v VerifyResult
	v.WrongIDs = []int{1, 2}
	v.MissingIDs = []int{9}
	v.Incorrect = 2

	ids, markAll := v.ResolveWrongIDs()
	if markAll || len(ids) != 2 || ids[0] != 1 {
		t.Errorf("wrong_ids must win: ids=%v markAll=%v", ids, markAll)
	}
}

func TestResolveWrongIDs_SampleThenMissing(t *testing.T) {
	var v VerifyResult
	v.IncorrectSample = []struct {
		ID int `json:"id"`
	}{{ID: 4}, {ID: 6}}

	ids, markAll := v.ResolveWrongIDs()
	if markAll || len(ids) != 2 || ids[1] != 6 {
		t.Errorf("sample ids expected: ids=%v markAll=%v", ids, markAll)
	}

	v = VerifyResult{MissingIDs: []int{7}, Missing: 1}
	ids, markAll = v.ResolveWrongIDs()
	if markAll || len(ids) != 1 || ids[0] != 7 {
		t.Errorf("missing ids expected: ids=%v markAll=%v", ids, markAll)
	}
}

func TestResolveWrongIDs_FailSafe(t *testing.T) {
	v := VerifyResult{Incorrect: 2}
	ids, markAll := v.ResolveWrongIDs()
	if !markAll || ids != nil {
		t.Errorf("counts without ids must mark all: ids=%v markAll=%v", ids, markAll)
	}

	v = VerifyResult{}
	ids, markAll = v.ResolveWrongIDs()
	if markAll || len(ids) != 0 {
		t.Errorf("clean result: ids=%v markAll=%v", ids, markAll)
	}
}
