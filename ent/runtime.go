// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Tnecniv1/Calcul-Pixel/ent/badgeunlock"
	"github.com/Tnecniv1/Calcul-Pixel/ent/entrainement"
	"github.com/Tnecniv1/Calcul-Pixel/ent/message"
	"github.com/Tnecniv1/Calcul-Pixel/ent/observation"
	"github.com/Tnecniv1/Calcul-Pixel/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeunlockFields := schema.BadgeUnlock{}.Fields()
	_ = badgeunlockFields
	// badgeunlockDescBadgeID is the schema descriptor for badge_id field.
	badgeunlockDescBadgeID := badgeunlockFields[0].Descriptor()
	// badgeunlock.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeunlock.BadgeIDValidator = badgeunlockDescBadgeID.Validators[0].(func(string) error)
	// badgeunlockDescUnlockedAt is the schema descriptor for unlocked_at field.
	badgeunlockDescUnlockedAt := badgeunlockFields[1].Descriptor()
	// badgeunlock.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	badgeunlock.DefaultUnlockedAt = badgeunlockDescUnlockedAt.Default.(func() time.Time)
	entrainementFields := schema.Entrainement{}.Fields()
	_ = entrainementFields
	// entrainementDescVolume is the schema descriptor for volume field.
	entrainementDescVolume := entrainementFields[0].Descriptor()
	// entrainement.VolumeValidator is a validator for the "volume" field. It is called by the builders before save.
	entrainement.VolumeValidator = entrainementDescVolume.Validators[0].(func(int) error)
	// entrainementDescTentative is the schema descriptor for tentative field.
	entrainementDescTentative := entrainementFields[1].Descriptor()
	// entrainement.DefaultTentative holds the default value on creation for the tentative field.
	entrainement.DefaultTentative = entrainementDescTentative.Default.(int)
	// entrainementDescCreatedAt is the schema descriptor for created_at field.
	entrainementDescCreatedAt := entrainementFields[2].Descriptor()
	// entrainement.DefaultCreatedAt holds the default value on creation for the created_at field.
	entrainement.DefaultCreatedAt = entrainementDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescSenderName is the schema descriptor for sender_name field.
	messageDescSenderName := messageFields[2].Descriptor()
	// message.SenderNameValidator is a validator for the "sender_name" field. It is called by the builders before save.
	message.SenderNameValidator = messageDescSenderName.Validators[0].(func(string) error)
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[5].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = func() func(string) error {
		validators := messageDescContent.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content string) error {
			for _, fn := range fns {
				if err := fn(content); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageFields[0].Descriptor()
	// message.IDValidator is a validator for the "id" field. It is called by the builders before save.
	message.IDValidator = messageDescID.Validators[0].(func(string) error)
	observationFields := schema.Observation{}.Fields()
	_ = observationFields
	// observationDescOperation is the schema descriptor for operation field.
	observationDescOperation := observationFields[4].Descriptor()
	// observation.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	observation.OperationValidator = observationDescOperation.Validators[0].(func(string) error)
	// observationDescTempsSeconds is the schema descriptor for temps_seconds field.
	observationDescTempsSeconds := observationFields[8].Descriptor()
	// observation.TempsSecondsValidator is a validator for the "temps_seconds" field. It is called by the builders before save.
	observation.TempsSecondsValidator = observationDescTempsSeconds.Validators[0].(func(int) error)
	// observationDescMargeErreur is the schema descriptor for marge_erreur field.
	observationDescMargeErreur := observationFields[9].Descriptor()
	// observation.DefaultMargeErreur holds the default value on creation for the marge_erreur field.
	observation.DefaultMargeErreur = observationDescMargeErreur.Default.(float64)
	// observationDescBonusVitesse is the schema descriptor for bonus_vitesse field.
	observationDescBonusVitesse := observationFields[11].Descriptor()
	// observation.DefaultBonusVitesse holds the default value on creation for the bonus_vitesse field.
	observation.DefaultBonusVitesse = observationDescBonusVitesse.Default.(float64)
	// observationDescBonusMarge is the schema descriptor for bonus_marge field.
	observationDescBonusMarge := observationFields[12].Descriptor()
	// observation.DefaultBonusMarge holds the default value on creation for the bonus_marge field.
	observation.DefaultBonusMarge = observationDescBonusMarge.Default.(float64)
	// observationDescScoreGlobal is the schema descriptor for score_global field.
	observationDescScoreGlobal := observationFields[13].Descriptor()
	// observation.DefaultScoreGlobal holds the default value on creation for the score_global field.
	observation.DefaultScoreGlobal = observationDescScoreGlobal.Default.(float64)
	// observationDescCorrection is the schema descriptor for correction field.
	observationDescCorrection := observationFields[14].Descriptor()
	// observation.DefaultCorrection holds the default value on creation for the correction field.
	observation.DefaultCorrection = observationDescCorrection.Default.(string)
	// observationDescBatchID is the schema descriptor for batch_id field.
	observationDescBatchID := observationFields[15].Descriptor()
	// observation.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	observation.BatchIDValidator = observationDescBatchID.Validators[0].(func(string) error)
	// observationDescCreatedAt is the schema descriptor for created_at field.
	observationDescCreatedAt := observationFields[16].Descriptor()
	// observation.DefaultCreatedAt holds the default value on creation for the created_at field.
	observation.DefaultCreatedAt = observationDescCreatedAt.Default.(func() time.Time)
}
