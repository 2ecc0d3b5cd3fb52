// Code generated by ent, DO NOT EDIT.

package observation

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the observation type in the database.
	Label = "observation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntrainementID holds the string denoting the entrainement_id field in the database.
	FieldEntrainementID = "entrainement_id"
	// FieldParcoursID holds the string denoting the parcours_id field in the database.
	FieldParcoursID = "parcours_id"
	// FieldOperateurUn holds the string denoting the operateur_un field in the database.
	FieldOperateurUn = "operateur_un"
	// FieldOperateurDeux holds the string denoting the operateur_deux field in the database.
	FieldOperateurDeux = "operateur_deux"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldProposition holds the string denoting the proposition field in the database.
	FieldProposition = "proposition"
	// FieldSolution holds the string denoting the solution field in the database.
	FieldSolution = "solution"
	// FieldEtat holds the string denoting the etat field in the database.
	FieldEtat = "etat"
	// FieldTempsSeconds holds the string denoting the temps_seconds field in the database.
	FieldTempsSeconds = "temps_seconds"
	// FieldMargeErreur holds the string denoting the marge_erreur field in the database.
	FieldMargeErreur = "marge_erreur"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldBonusVitesse holds the string denoting the bonus_vitesse field in the database.
	FieldBonusVitesse = "bonus_vitesse"
	// FieldBonusMarge holds the string denoting the bonus_marge field in the database.
	FieldBonusMarge = "bonus_marge"
	// FieldScoreGlobal holds the string denoting the score_global field in the database.
	FieldScoreGlobal = "score_global"
	// FieldCorrection holds the string denoting the correction field in the database.
	FieldCorrection = "correction"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the observation in the database.
	Table = "observations"
)

// Columns holds all SQL columns for observation fields.
var Columns = []string{
	FieldID,
	FieldEntrainementID,
	FieldParcoursID,
	FieldOperateurUn,
	FieldOperateurDeux,
	FieldOperation,
	FieldProposition,
	FieldSolution,
	FieldEtat,
	FieldTempsSeconds,
	FieldMargeErreur,
	FieldScore,
	FieldBonusVitesse,
	FieldBonusMarge,
	FieldScoreGlobal,
	FieldCorrection,
	FieldBatchID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	OperationValidator func(string) error
	// TempsSecondsValidator is a validator for the "temps_seconds" field. It is called by the builders before save.
	TempsSecondsValidator func(int) error
	// DefaultMargeErreur holds the default value on creation for the "marge_erreur" field.
	DefaultMargeErreur float64
	// DefaultBonusVitesse holds the default value on creation for the "bonus_vitesse" field.
	DefaultBonusVitesse float64
	// DefaultBonusMarge holds the default value on creation for the "bonus_marge" field.
	DefaultBonusMarge float64
	// DefaultScoreGlobal holds the default value on creation for the "score_global" field.
	DefaultScoreGlobal float64
	// DefaultCorrection holds the default value on creation for the "correction" field.
	DefaultCorrection string
	// BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	BatchIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Observation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntrainementID orders the results by the entrainement_id field.
func ByEntrainementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntrainementID, opts...).ToFunc()
}

// ByParcoursID orders the results by the parcours_id field.
func ByParcoursID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParcoursID, opts...).ToFunc()
}

// ByOperateurUn orders the results by the operateur_un field.
func ByOperateurUn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperateurUn, opts...).ToFunc()
}

// ByOperateurDeux orders the results by the operateur_deux field.
func ByOperateurDeux(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperateurDeux, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// ByProposition orders the results by the proposition field.
func ByProposition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposition, opts...).ToFunc()
}

// BySolution orders the results by the solution field.
func BySolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolution, opts...).ToFunc()
}

// ByEtat orders the results by the etat field.
func ByEtat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtat, opts...).ToFunc()
}

// ByTempsSeconds orders the results by the temps_seconds field.
func ByTempsSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTempsSeconds, opts...).ToFunc()
}

// ByMargeErreur orders the results by the marge_erreur field.
func ByMargeErreur(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMargeErreur, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByBonusVitesse orders the results by the bonus_vitesse field.
func ByBonusVitesse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBonusVitesse, opts...).ToFunc()
}

// ByBonusMarge orders the results by the bonus_marge field.
func ByBonusMarge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBonusMarge, opts...).ToFunc()
}

// ByScoreGlobal orders the results by the score_global field.
func ByScoreGlobal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreGlobal, opts...).ToFunc()
}

// ByCorrection orders the results by the correction field.
func ByCorrection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrection, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
