// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/johnazariah/aura-sub009/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldID, id))
}

// StoryID applies equality check predicate on the "story_id" field. It's identical to StoryIDEQ.
func StoryID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStoryID, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOrderIndex, v))
}

// Wave applies equality check predicate on the "wave" field. It's identical to WaveEQ.
func Wave(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWave, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldName, v))
}

// Capability applies equality check predicate on the "capability" field. It's identical to CapabilityEQ.
func Capability(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCapability, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldLanguage, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldInput, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOutput, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldError, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAgentID, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempts, v))
}

// ApprovalFeedback applies equality check predicate on the "approval_feedback" field. It's identical to ApprovalFeedbackEQ.
func ApprovalFeedback(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldApprovalFeedback, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldSkipReason, v))
}

// NeedsRework applies equality check predicate on the "needs_rework" field. It's identical to NeedsReworkEQ.
func NeedsRework(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldNeedsRework, v))
}

// PreviousOutput applies equality check predicate on the "previous_output" field. It's identical to PreviousOutputEQ.
func PreviousOutput(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPreviousOutput, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// StoryIDEQ applies the EQ predicate on the "story_id" field.
func StoryIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStoryID, v))
}

// StoryIDNEQ applies the NEQ predicate on the "story_id" field.
func StoryIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStoryID, v))
}

// StoryIDIn applies the In predicate on the "story_id" field.
func StoryIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStoryID, vs...))
}

// StoryIDNotIn applies the NotIn predicate on the "story_id" field.
func StoryIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStoryID, vs...))
}

// StoryIDGT applies the GT predicate on the "story_id" field.
func StoryIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStoryID, v))
}

// StoryIDGTE applies the GTE predicate on the "story_id" field.
func StoryIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStoryID, v))
}

// StoryIDLT applies the LT predicate on the "story_id" field.
func StoryIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStoryID, v))
}

// StoryIDLTE applies the LTE predicate on the "story_id" field.
func StoryIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStoryID, v))
}

// StoryIDContains applies the Contains predicate on the "story_id" field.
func StoryIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldStoryID, v))
}

// StoryIDHasPrefix applies the HasPrefix predicate on the "story_id" field.
func StoryIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldStoryID, v))
}

// StoryIDHasSuffix applies the HasSuffix predicate on the "story_id" field.
func StoryIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldStoryID, v))
}

// StoryIDEqualFold applies the EqualFold predicate on the "story_id" field.
func StoryIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldStoryID, v))
}

// StoryIDContainsFold applies the ContainsFold predicate on the "story_id" field.
func StoryIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldStoryID, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldOrderIndex, v))
}

// WaveEQ applies the EQ predicate on the "wave" field.
func WaveEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWave, v))
}

// WaveNEQ applies the NEQ predicate on the "wave" field.
func WaveNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldWave, v))
}

// WaveIn applies the In predicate on the "wave" field.
func WaveIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldWave, vs...))
}

// WaveNotIn applies the NotIn predicate on the "wave" field.
func WaveNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldWave, vs...))
}

// WaveGT applies the GT predicate on the "wave" field.
func WaveGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldWave, v))
}

// WaveGTE applies the GTE predicate on the "wave" field.
func WaveGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldWave, v))
}

// WaveLT applies the LT predicate on the "wave" field.
func WaveLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldWave, v))
}

// WaveLTE applies the LTE predicate on the "wave" field.
func WaveLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldWave, v))
}

// WaveIsNil applies the IsNil predicate on the "wave" field.
func WaveIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldWave))
}

// WaveNotNil applies the NotNil predicate on the "wave" field.
func WaveNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldWave))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldName, v))
}

// CapabilityEQ applies the EQ predicate on the "capability" field.
func CapabilityEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCapability, v))
}

// CapabilityNEQ applies the NEQ predicate on the "capability" field.
func CapabilityNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCapability, v))
}

// CapabilityIn applies the In predicate on the "capability" field.
func CapabilityIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCapability, vs...))
}

// CapabilityNotIn applies the NotIn predicate on the "capability" field.
func CapabilityNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCapability, vs...))
}

// CapabilityGT applies the GT predicate on the "capability" field.
func CapabilityGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCapability, v))
}

// CapabilityGTE applies the GTE predicate on the "capability" field.
func CapabilityGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCapability, v))
}

// CapabilityLT applies the LT predicate on the "capability" field.
func CapabilityLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCapability, v))
}

// CapabilityLTE applies the LTE predicate on the "capability" field.
func CapabilityLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCapability, v))
}

// CapabilityContains applies the Contains predicate on the "capability" field.
func CapabilityContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldCapability, v))
}

// CapabilityHasPrefix applies the HasPrefix predicate on the "capability" field.
func CapabilityHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldCapability, v))
}

// CapabilityHasSuffix applies the HasSuffix predicate on the "capability" field.
func CapabilityHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldCapability, v))
}

// CapabilityEqualFold applies the EqualFold predicate on the "capability" field.
func CapabilityEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldCapability, v))
}

// CapabilityContainsFold applies the ContainsFold predicate on the "capability" field.
func CapabilityContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldCapability, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldLanguage, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldDescription, v))
}

// DependsOnIsNil applies the IsNil predicate on the "depends_on" field.
func DependsOnIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldDependsOn))
}

// DependsOnNotNil applies the NotNil predicate on the "depends_on" field.
func DependsOnNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldDependsOn))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldInput, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldInput))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldInput, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldOutput, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldError, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStatus, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldAgentID, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldAttempts, v))
}

// ApprovalEQ applies the EQ predicate on the "approval" field.
func ApprovalEQ(v Approval) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldApproval, v))
}

// ApprovalNEQ applies the NEQ predicate on the "approval" field.
func ApprovalNEQ(v Approval) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldApproval, v))
}

// ApprovalIn applies the In predicate on the "approval" field.
func ApprovalIn(vs ...Approval) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldApproval, vs...))
}

// ApprovalNotIn applies the NotIn predicate on the "approval" field.
func ApprovalNotIn(vs ...Approval) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldApproval, vs...))
}

// ApprovalIsNil applies the IsNil predicate on the "approval" field.
func ApprovalIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldApproval))
}

// ApprovalNotNil applies the NotNil predicate on the "approval" field.
func ApprovalNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldApproval))
}

// ApprovalFeedbackEQ applies the EQ predicate on the "approval_feedback" field.
func ApprovalFeedbackEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldApprovalFeedback, v))
}

// ApprovalFeedbackNEQ applies the NEQ predicate on the "approval_feedback" field.
func ApprovalFeedbackNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldApprovalFeedback, v))
}

// ApprovalFeedbackIn applies the In predicate on the "approval_feedback" field.
func ApprovalFeedbackIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldApprovalFeedback, vs...))
}

// ApprovalFeedbackNotIn applies the NotIn predicate on the "approval_feedback" field.
func ApprovalFeedbackNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldApprovalFeedback, vs...))
}

// ApprovalFeedbackGT applies the GT predicate on the "approval_feedback" field.
func ApprovalFeedbackGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldApprovalFeedback, v))
}

// ApprovalFeedbackGTE applies the GTE predicate on the "approval_feedback" field.
func ApprovalFeedbackGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldApprovalFeedback, v))
}

// ApprovalFeedbackLT applies the LT predicate on the "approval_feedback" field.
func ApprovalFeedbackLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldApprovalFeedback, v))
}

// ApprovalFeedbackLTE applies the LTE predicate on the "approval_feedback" field.
func ApprovalFeedbackLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldApprovalFeedback, v))
}

// ApprovalFeedbackContains applies the Contains predicate on the "approval_feedback" field.
func ApprovalFeedbackContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldApprovalFeedback, v))
}

// ApprovalFeedbackHasPrefix applies the HasPrefix predicate on the "approval_feedback" field.
func ApprovalFeedbackHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldApprovalFeedback, v))
}

// ApprovalFeedbackHasSuffix applies the HasSuffix predicate on the "approval_feedback" field.
func ApprovalFeedbackHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldApprovalFeedback, v))
}

// ApprovalFeedbackIsNil applies the IsNil predicate on the "approval_feedback" field.
func ApprovalFeedbackIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldApprovalFeedback))
}

// ApprovalFeedbackNotNil applies the NotNil predicate on the "approval_feedback" field.
func ApprovalFeedbackNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldApprovalFeedback))
}

// ApprovalFeedbackEqualFold applies the EqualFold predicate on the "approval_feedback" field.
func ApprovalFeedbackEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldApprovalFeedback, v))
}

// ApprovalFeedbackContainsFold applies the ContainsFold predicate on the "approval_feedback" field.
func ApprovalFeedbackContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldApprovalFeedback, v))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldSkipReason, v))
}

// NeedsReworkEQ applies the EQ predicate on the "needs_rework" field.
func NeedsReworkEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldNeedsRework, v))
}

// NeedsReworkNEQ applies the NEQ predicate on the "needs_rework" field.
func NeedsReworkNEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldNeedsRework, v))
}

// PreviousOutputEQ applies the EQ predicate on the "previous_output" field.
func PreviousOutputEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPreviousOutput, v))
}

// PreviousOutputNEQ applies the NEQ predicate on the "previous_output" field.
func PreviousOutputNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldPreviousOutput, v))
}

// PreviousOutputIn applies the In predicate on the "previous_output" field.
func PreviousOutputIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldPreviousOutput, vs...))
}

// PreviousOutputNotIn applies the NotIn predicate on the "previous_output" field.
func PreviousOutputNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldPreviousOutput, vs...))
}

// PreviousOutputGT applies the GT predicate on the "previous_output" field.
func PreviousOutputGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldPreviousOutput, v))
}

// PreviousOutputGTE applies the GTE predicate on the "previous_output" field.
func PreviousOutputGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldPreviousOutput, v))
}

// PreviousOutputLT applies the LT predicate on the "previous_output" field.
func PreviousOutputLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldPreviousOutput, v))
}

// PreviousOutputLTE applies the LTE predicate on the "previous_output" field.
func PreviousOutputLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldPreviousOutput, v))
}

// PreviousOutputContains applies the Contains predicate on the "previous_output" field.
func PreviousOutputContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldPreviousOutput, v))
}

// PreviousOutputHasPrefix applies the HasPrefix predicate on the "previous_output" field.
func PreviousOutputHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldPreviousOutput, v))
}

// PreviousOutputHasSuffix applies the HasSuffix predicate on the "previous_output" field.
func PreviousOutputHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldPreviousOutput, v))
}

// PreviousOutputIsNil applies the IsNil predicate on the "previous_output" field.
func PreviousOutputIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldPreviousOutput))
}

// PreviousOutputNotNil applies the NotNil predicate on the "previous_output" field.
func PreviousOutputNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldPreviousOutput))
}

// PreviousOutputEqualFold applies the EqualFold predicate on the "previous_output" field.
func PreviousOutputEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldPreviousOutput, v))
}

// PreviousOutputContainsFold applies the ContainsFold predicate on the "previous_output" field.
func PreviousOutputContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldPreviousOutput, v))
}

// TraceIsNil applies the IsNil predicate on the "trace" field.
func TraceIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldTrace))
}

// TraceNotNil applies the NotNil predicate on the "trace" field.
func TraceNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldTrace))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldCompletedAt))
}

// HasStory applies the HasEdge predicate on the "story" edge.
func HasStory() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StoryTable, StoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoryWith applies the HasEdge predicate on the "story" edge with a given conditions (other predicates).
func HasStoryWith(preds ...predicate.Story) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newStoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatMessages applies the HasEdge predicate on the "chat_messages" edge.
func HasChatMessages() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatMessagesTable, ChatMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatMessagesWith applies the HasEdge predicate on the "chat_messages" edge with a given conditions (other predicates).
func HasChatMessagesWith(preds ...predicate.ChatMessage) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newChatMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}
