// Code generated by ent, DO NOT EDIT.

package observation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldID, id))
}

// EntrainementID applies equality check predicate on the "entrainement_id" field. It's identical to EntrainementIDEQ.
func EntrainementID(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldEntrainementID, v))
}

// ParcoursID applies equality check predicate on the "parcours_id" field. It's identical to ParcoursIDEQ.
func ParcoursID(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldParcoursID, v))
}

// OperateurUn applies equality check predicate on the "operateur_un" field. It's identical to OperateurUnEQ.
func OperateurUn(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldOperateurUn, v))
}

// OperateurDeux applies equality check predicate on the "operateur_deux" field. It's identical to OperateurDeuxEQ.
func OperateurDeux(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldOperateurDeux, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldOperation, v))
}

// Proposition applies equality check predicate on the "proposition" field. It's identical to PropositionEQ.
func Proposition(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldProposition, v))
}

// Solution applies equality check predicate on the "solution" field. It's identical to SolutionEQ.
func Solution(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldSolution, v))
}

// Etat applies equality check predicate on the "etat" field. It's identical to EtatEQ.
func Etat(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldEtat, v))
}

// TempsSeconds applies equality check predicate on the "temps_seconds" field. It's identical to TempsSecondsEQ.
func TempsSeconds(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTempsSeconds, v))
}

// MargeErreur applies equality check predicate on the "marge_erreur" field. It's identical to MargeErreurEQ.
func MargeErreur(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldMargeErreur, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldScore, v))
}

// BonusVitesse applies equality check predicate on the "bonus_vitesse" field. It's identical to BonusVitesseEQ.
func BonusVitesse(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldBonusVitesse, v))
}

// BonusMarge applies equality check predicate on the "bonus_marge" field. It's identical to BonusMargeEQ.
func BonusMarge(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldBonusMarge, v))
}

// ScoreGlobal applies equality check predicate on the "score_global" field. It's identical to ScoreGlobalEQ.
func ScoreGlobal(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldScoreGlobal, v))
}

// Correction applies equality check predicate on the "correction" field. It's identical to CorrectionEQ.
func Correction(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldCorrection, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldBatchID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldCreatedAt, v))
}

// EntrainementIDEQ applies the EQ predicate on the "entrainement_id" field.
func EntrainementIDEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldEntrainementID, v))
}

// EntrainementIDNEQ applies the NEQ predicate on the "entrainement_id" field.
func EntrainementIDNEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldEntrainementID, v))
}

// EntrainementIDIn applies the In predicate on the "entrainement_id" field.
func EntrainementIDIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldEntrainementID, vs...))
}

// EntrainementIDNotIn applies the NotIn predicate on the "entrainement_id" field.
func EntrainementIDNotIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldEntrainementID, vs...))
}

// EntrainementIDGT applies the GT predicate on the "entrainement_id" field.
func EntrainementIDGT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldEntrainementID, v))
}

// EntrainementIDGTE applies the GTE predicate on the "entrainement_id" field.
func EntrainementIDGTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldEntrainementID, v))
}

// EntrainementIDLT applies the LT predicate on the "entrainement_id" field.
func EntrainementIDLT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldEntrainementID, v))
}

// EntrainementIDLTE applies the LTE predicate on the "entrainement_id" field.
func EntrainementIDLTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldEntrainementID, v))
}

// ParcoursIDEQ applies the EQ predicate on the "parcours_id" field.
func ParcoursIDEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldParcoursID, v))
}

// ParcoursIDNEQ applies the NEQ predicate on the "parcours_id" field.
func ParcoursIDNEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldParcoursID, v))
}

// ParcoursIDIn applies the In predicate on the "parcours_id" field.
func ParcoursIDIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldParcoursID, vs...))
}

// ParcoursIDNotIn applies the NotIn predicate on the "parcours_id" field.
func ParcoursIDNotIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldParcoursID, vs...))
}

// ParcoursIDGT applies the GT predicate on the "parcours_id" field.
func ParcoursIDGT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldParcoursID, v))
}

// ParcoursIDGTE applies the GTE predicate on the "parcours_id" field.
func ParcoursIDGTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldParcoursID, v))
}

// ParcoursIDLT applies the LT predicate on the "parcours_id" field.
func ParcoursIDLT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldParcoursID, v))
}

// ParcoursIDLTE applies the LTE predicate on the "parcours_id" field.
func ParcoursIDLTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldParcoursID, v))
}

// OperateurUnEQ applies the EQ predicate on the "operateur_un" field.
func OperateurUnEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldOperateurUn, v))
}

// OperateurUnNEQ applies the NEQ predicate on the "operateur_un" field.
func OperateurUnNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldOperateurUn, v))
}

// OperateurUnIn applies the In predicate on the "operateur_un" field.
func OperateurUnIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldOperateurUn, vs...))
}

// OperateurUnNotIn applies the NotIn predicate on the "operateur_un" field.
func OperateurUnNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldOperateurUn, vs...))
}

// OperateurUnGT applies the GT predicate on the "operateur_un" field.
func OperateurUnGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldOperateurUn, v))
}

// OperateurUnGTE applies the GTE predicate on the "operateur_un" field.
func OperateurUnGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldOperateurUn, v))
}

// OperateurUnLT applies the LT predicate on the "operateur_un" field.
func OperateurUnLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldOperateurUn, v))
}

// OperateurUnLTE applies the LTE predicate on the "operateur_un" field.
func OperateurUnLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldOperateurUn, v))
}

// OperateurDeuxEQ applies the EQ predicate on the "operateur_deux" field.
func OperateurDeuxEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldOperateurDeux, v))
}

// OperateurDeuxNEQ applies the NEQ predicate on the "operateur_deux" field.
func OperateurDeuxNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldOperateurDeux, v))
}

// OperateurDeuxIn applies the In predicate on the "operateur_deux" field.
func OperateurDeuxIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldOperateurDeux, vs...))
}

// OperateurDeuxNotIn applies the NotIn predicate on the "operateur_deux" field.
func OperateurDeuxNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldOperateurDeux, vs...))
}

// OperateurDeuxGT applies the GT predicate on the "operateur_deux" field.
func OperateurDeuxGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldOperateurDeux, v))
}

// OperateurDeuxGTE applies the GTE predicate on the "operateur_deux" field.
func OperateurDeuxGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldOperateurDeux, v))
}

// OperateurDeuxLT applies the LT predicate on the "operateur_deux" field.
func OperateurDeuxLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldOperateurDeux, v))
}

// OperateurDeuxLTE applies the LTE predicate on the "operateur_deux" field.
func OperateurDeuxLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldOperateurDeux, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldOperation, v))
}

// PropositionEQ applies the EQ predicate on the "proposition" field.
func PropositionEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldProposition, v))
}

// PropositionNEQ applies the NEQ predicate on the "proposition" field.
func PropositionNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldProposition, v))
}

// PropositionIn applies the In predicate on the "proposition" field.
func PropositionIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldProposition, vs...))
}

// PropositionNotIn applies the NotIn predicate on the "proposition" field.
func PropositionNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldProposition, vs...))
}

// PropositionGT applies the GT predicate on the "proposition" field.
func PropositionGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldProposition, v))
}

// PropositionGTE applies the GTE predicate on the "proposition" field.
func PropositionGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldProposition, v))
}

// PropositionLT applies the LT predicate on the "proposition" field.
func PropositionLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldProposition, v))
}

// PropositionLTE applies the LTE predicate on the "proposition" field.
func PropositionLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldProposition, v))
}

// SolutionEQ applies the EQ predicate on the "solution" field.
func SolutionEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldSolution, v))
}

// SolutionNEQ applies the NEQ predicate on the "solution" field.
func SolutionNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldSolution, v))
}

// SolutionIn applies the In predicate on the "solution" field.
func SolutionIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldSolution, vs...))
}

// SolutionNotIn applies the NotIn predicate on the "solution" field.
func SolutionNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldSolution, vs...))
}

// SolutionGT applies the GT predicate on the "solution" field.
func SolutionGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldSolution, v))
}

// SolutionGTE applies the GTE predicate on the "solution" field.
func SolutionGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldSolution, v))
}

// SolutionLT applies the LT predicate on the "solution" field.
func SolutionLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldSolution, v))
}

// SolutionLTE applies the LTE predicate on the "solution" field.
func SolutionLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldSolution, v))
}

// EtatEQ applies the EQ predicate on the "etat" field.
func EtatEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldEtat, v))
}

// EtatNEQ applies the NEQ predicate on the "etat" field.
func EtatNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldEtat, v))
}

// EtatIn applies the In predicate on the "etat" field.
func EtatIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldEtat, vs...))
}

// EtatNotIn applies the NotIn predicate on the "etat" field.
func EtatNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldEtat, vs...))
}

// EtatGT applies the GT predicate on the "etat" field.
func EtatGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldEtat, v))
}

// EtatGTE applies the GTE predicate on the "etat" field.
func EtatGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldEtat, v))
}

// EtatLT applies the LT predicate on the "etat" field.
func EtatLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldEtat, v))
}

// EtatLTE applies the LTE predicate on the "etat" field.
func EtatLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldEtat, v))
}

// EtatContains applies the Contains predicate on the "etat" field.
func EtatContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldEtat, v))
}

// EtatHasPrefix applies the HasPrefix predicate on the "etat" field.
func EtatHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldEtat, v))
}

// EtatHasSuffix applies the HasSuffix predicate on the "etat" field.
func EtatHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldEtat, v))
}

// EtatEqualFold applies the EqualFold predicate on the "etat" field.
func EtatEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldEtat, v))
}

// EtatContainsFold applies the ContainsFold predicate on the "etat" field.
func EtatContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldEtat, v))
}

// TempsSecondsEQ applies the EQ predicate on the "temps_seconds" field.
func TempsSecondsEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTempsSeconds, v))
}

// TempsSecondsNEQ applies the NEQ predicate on the "temps_seconds" field.
func TempsSecondsNEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldTempsSeconds, v))
}

// TempsSecondsIn applies the In predicate on the "temps_seconds" field.
func TempsSecondsIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldTempsSeconds, vs...))
}

// TempsSecondsNotIn applies the NotIn predicate on the "temps_seconds" field.
func TempsSecondsNotIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldTempsSeconds, vs...))
}

// TempsSecondsGT applies the GT predicate on the "temps_seconds" field.
func TempsSecondsGT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldTempsSeconds, v))
}

// TempsSecondsGTE applies the GTE predicate on the "temps_seconds" field.
func TempsSecondsGTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldTempsSeconds, v))
}

// TempsSecondsLT applies the LT predicate on the "temps_seconds" field.
func TempsSecondsLT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldTempsSeconds, v))
}

// TempsSecondsLTE applies the LTE predicate on the "temps_seconds" field.
func TempsSecondsLTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldTempsSeconds, v))
}

// MargeErreurEQ applies the EQ predicate on the "marge_erreur" field.
func MargeErreurEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldMargeErreur, v))
}

// MargeErreurNEQ applies the NEQ predicate on the "marge_erreur" field.
func MargeErreurNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldMargeErreur, v))
}

// MargeErreurIn applies the In predicate on the "marge_erreur" field.
func MargeErreurIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldMargeErreur, vs...))
}

// MargeErreurNotIn applies the NotIn predicate on the "marge_erreur" field.
func MargeErreurNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldMargeErreur, vs...))
}

// MargeErreurGT applies the GT predicate on the "marge_erreur" field.
func MargeErreurGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldMargeErreur, v))
}

// MargeErreurGTE applies the GTE predicate on the "marge_erreur" field.
func MargeErreurGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldMargeErreur, v))
}

// MargeErreurLT applies the LT predicate on the "marge_erreur" field.
func MargeErreurLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldMargeErreur, v))
}

// MargeErreurLTE applies the LTE predicate on the "marge_erreur" field.
func MargeErreurLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldMargeErreur, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldScore, v))
}

// BonusVitesseEQ applies the EQ predicate on the "bonus_vitesse" field.
func BonusVitesseEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldBonusVitesse, v))
}

// BonusVitesseNEQ applies the NEQ predicate on the "bonus_vitesse" field.
func BonusVitesseNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldBonusVitesse, v))
}

// BonusVitesseIn applies the In predicate on the "bonus_vitesse" field.
func BonusVitesseIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldBonusVitesse, vs...))
}

// BonusVitesseNotIn applies the NotIn predicate on the "bonus_vitesse" field.
func BonusVitesseNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldBonusVitesse, vs...))
}

// BonusVitesseGT applies the GT predicate on the "bonus_vitesse" field.
func BonusVitesseGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldBonusVitesse, v))
}

// BonusVitesseGTE applies the GTE predicate on the "bonus_vitesse" field.
func BonusVitesseGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldBonusVitesse, v))
}

// BonusVitesseLT applies the LT predicate on the "bonus_vitesse" field.
func BonusVitesseLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldBonusVitesse, v))
}

// BonusVitesseLTE applies the LTE predicate on the "bonus_vitesse" field.
func BonusVitesseLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldBonusVitesse, v))
}

// BonusMargeEQ applies the EQ predicate on the "bonus_marge" field.
func BonusMargeEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldBonusMarge, v))
}

// BonusMargeNEQ applies the NEQ predicate on the "bonus_marge" field.
func BonusMargeNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldBonusMarge, v))
}

// BonusMargeIn applies the In predicate on the "bonus_marge" field.
func BonusMargeIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldBonusMarge, vs...))
}

// BonusMargeNotIn applies the NotIn predicate on the "bonus_marge" field.
func BonusMargeNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldBonusMarge, vs...))
}

// BonusMargeGT applies the GT predicate on the "bonus_marge" field.
func BonusMargeGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldBonusMarge, v))
}

// BonusMargeGTE applies the GTE predicate on the "bonus_marge" field.
func BonusMargeGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldBonusMarge, v))
}

// BonusMargeLT applies the LT predicate on the "bonus_marge" field.
func BonusMargeLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldBonusMarge, v))
}

// BonusMargeLTE applies the LTE predicate on the "bonus_marge" field.
func BonusMargeLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldBonusMarge, v))
}

// ScoreGlobalEQ applies the EQ predicate on the "score_global" field.
func ScoreGlobalEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldScoreGlobal, v))
}

// ScoreGlobalNEQ applies the NEQ predicate on the "score_global" field.
func ScoreGlobalNEQ(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldScoreGlobal, v))
}

// ScoreGlobalIn applies the In predicate on the "score_global" field.
func ScoreGlobalIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldScoreGlobal, vs...))
}

// ScoreGlobalNotIn applies the NotIn predicate on the "score_global" field.
func ScoreGlobalNotIn(vs ...float64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldScoreGlobal, vs...))
}

// ScoreGlobalGT applies the GT predicate on the "score_global" field.
func ScoreGlobalGT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldScoreGlobal, v))
}

// ScoreGlobalGTE applies the GTE predicate on the "score_global" field.
func ScoreGlobalGTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldScoreGlobal, v))
}

// ScoreGlobalLT applies the LT predicate on the "score_global" field.
func ScoreGlobalLT(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldScoreGlobal, v))
}

// ScoreGlobalLTE applies the LTE predicate on the "score_global" field.
func ScoreGlobalLTE(v float64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldScoreGlobal, v))
}

// CorrectionEQ applies the EQ predicate on the "correction" field.
func CorrectionEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldCorrection, v))
}

// CorrectionNEQ applies the NEQ predicate on the "correction" field.
func CorrectionNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldCorrection, v))
}

// CorrectionIn applies the In predicate on the "correction" field.
func CorrectionIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldCorrection, vs...))
}

// CorrectionNotIn applies the NotIn predicate on the "correction" field.
func CorrectionNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldCorrection, vs...))
}

// CorrectionGT applies the GT predicate on the "correction" field.
func CorrectionGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldCorrection, v))
}

// CorrectionGTE applies the GTE predicate on the "correction" field.
func CorrectionGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldCorrection, v))
}

// CorrectionLT applies the LT predicate on the "correction" field.
func CorrectionLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldCorrection, v))
}

// CorrectionLTE applies the LTE predicate on the "correction" field.
func CorrectionLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldCorrection, v))
}

// CorrectionContains applies the Contains predicate on the "correction" field.
func CorrectionContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldCorrection, v))
}

// CorrectionHasPrefix applies the HasPrefix predicate on the "correction" field.
func CorrectionHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldCorrection, v))
}

// CorrectionHasSuffix applies the HasSuffix predicate on the "correction" field.
func CorrectionHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldCorrection, v))
}

// CorrectionEqualFold applies the EqualFold predicate on the "correction" field.
func CorrectionEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldCorrection, v))
}

// CorrectionContainsFold applies the ContainsFold predicate on the "correction" field.
func CorrectionContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldCorrection, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldBatchID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Observation) predicate.Observation {
	return predicate.Observation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Observation) predicate.Observation {
	return predicate.Observation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Observation) predicate.Observation {
	return predicate.Observation(sql.NotPredicates(p))
}
