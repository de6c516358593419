// Code generated by ent, DO NOT EDIT.

package story

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/johnazariah/aura-sub009/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldDescription, v))
}

// IssueProvider applies equality check predicate on the "issue_provider" field. It's identical to IssueProviderEQ.
func IssueProvider(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueProvider, v))
}

// IssueOwner applies equality check predicate on the "issue_owner" field. It's identical to IssueOwnerEQ.
func IssueOwner(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueOwner, v))
}

// IssueRepo applies equality check predicate on the "issue_repo" field. It's identical to IssueRepoEQ.
func IssueRepo(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueRepo, v))
}

// IssueNumber applies equality check predicate on the "issue_number" field. It's identical to IssueNumberEQ.
func IssueNumber(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueURL applies equality check predicate on the "issue_url" field. It's identical to IssueURLEQ.
func IssueURL(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueURL, v))
}

// RepositoryPath applies equality check predicate on the "repository_path" field. It's identical to RepositoryPathEQ.
func RepositoryPath(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldRepositoryPath, v))
}

// WorktreePath applies equality check predicate on the "worktree_path" field. It's identical to WorktreePathEQ.
func WorktreePath(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldWorktreePath, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldBranch, v))
}

// CurrentWave applies equality check predicate on the "current_wave" field. It's identical to CurrentWaveEQ.
func CurrentWave(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCurrentWave, v))
}

// MaxParallelism applies equality check predicate on the "max_parallelism" field. It's identical to MaxParallelismEQ.
func MaxParallelism(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldMaxParallelism, v))
}

// PullRequestURL applies equality check predicate on the "pull_request_url" field. It's identical to PullRequestURLEQ.
func PullRequestURL(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldPullRequestURL, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCompletedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldDescription, v))
}

// IssueProviderEQ applies the EQ predicate on the "issue_provider" field.
func IssueProviderEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueProvider, v))
}

// IssueProviderNEQ applies the NEQ predicate on the "issue_provider" field.
func IssueProviderNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldIssueProvider, v))
}

// IssueProviderIn applies the In predicate on the "issue_provider" field.
func IssueProviderIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldIssueProvider, vs...))
}

// IssueProviderNotIn applies the NotIn predicate on the "issue_provider" field.
func IssueProviderNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldIssueProvider, vs...))
}

// IssueProviderGT applies the GT predicate on the "issue_provider" field.
func IssueProviderGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldIssueProvider, v))
}

// IssueProviderGTE applies the GTE predicate on the "issue_provider" field.
func IssueProviderGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldIssueProvider, v))
}

// IssueProviderLT applies the LT predicate on the "issue_provider" field.
func IssueProviderLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldIssueProvider, v))
}

// IssueProviderLTE applies the LTE predicate on the "issue_provider" field.
func IssueProviderLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldIssueProvider, v))
}

// IssueProviderContains applies the Contains predicate on the "issue_provider" field.
func IssueProviderContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldIssueProvider, v))
}

// IssueProviderHasPrefix applies the HasPrefix predicate on the "issue_provider" field.
func IssueProviderHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldIssueProvider, v))
}

// IssueProviderHasSuffix applies the HasSuffix predicate on the "issue_provider" field.
func IssueProviderHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldIssueProvider, v))
}

// IssueProviderIsNil applies the IsNil predicate on the "issue_provider" field.
func IssueProviderIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldIssueProvider))
}

// IssueProviderNotNil applies the NotNil predicate on the "issue_provider" field.
func IssueProviderNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldIssueProvider))
}

// IssueProviderEqualFold applies the EqualFold predicate on the "issue_provider" field.
func IssueProviderEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldIssueProvider, v))
}

// IssueProviderContainsFold applies the ContainsFold predicate on the "issue_provider" field.
func IssueProviderContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldIssueProvider, v))
}

// IssueOwnerEQ applies the EQ predicate on the "issue_owner" field.
func IssueOwnerEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueOwner, v))
}

// IssueOwnerNEQ applies the NEQ predicate on the "issue_owner" field.
func IssueOwnerNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldIssueOwner, v))
}

// IssueOwnerIn applies the In predicate on the "issue_owner" field.
func IssueOwnerIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldIssueOwner, vs...))
}

// IssueOwnerNotIn applies the NotIn predicate on the "issue_owner" field.
func IssueOwnerNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldIssueOwner, vs...))
}

// IssueOwnerGT applies the GT predicate on the "issue_owner" field.
func IssueOwnerGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldIssueOwner, v))
}

// IssueOwnerGTE applies the GTE predicate on the "issue_owner" field.
func IssueOwnerGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldIssueOwner, v))
}

// IssueOwnerLT applies the LT predicate on the "issue_owner" field.
func IssueOwnerLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldIssueOwner, v))
}

// IssueOwnerLTE applies the LTE predicate on the "issue_owner" field.
func IssueOwnerLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldIssueOwner, v))
}

// IssueOwnerContains applies the Contains predicate on the "issue_owner" field.
func IssueOwnerContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldIssueOwner, v))
}

// IssueOwnerHasPrefix applies the HasPrefix predicate on the "issue_owner" field.
func IssueOwnerHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldIssueOwner, v))
}

// IssueOwnerHasSuffix applies the HasSuffix predicate on the "issue_owner" field.
func IssueOwnerHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldIssueOwner, v))
}

// IssueOwnerIsNil applies the IsNil predicate on the "issue_owner" field.
func IssueOwnerIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldIssueOwner))
}

// IssueOwnerNotNil applies the NotNil predicate on the "issue_owner" field.
func IssueOwnerNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldIssueOwner))
}

// IssueOwnerEqualFold applies the EqualFold predicate on the "issue_owner" field.
func IssueOwnerEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldIssueOwner, v))
}

// IssueOwnerContainsFold applies the ContainsFold predicate on the "issue_owner" field.
func IssueOwnerContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldIssueOwner, v))
}

// IssueRepoEQ applies the EQ predicate on the "issue_repo" field.
func IssueRepoEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueRepo, v))
}

// IssueRepoNEQ applies the NEQ predicate on the "issue_repo" field.
func IssueRepoNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldIssueRepo, v))
}

// IssueRepoIn applies the In predicate on the "issue_repo" field.
func IssueRepoIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldIssueRepo, vs...))
}

// IssueRepoNotIn applies the NotIn predicate on the "issue_repo" field.
func IssueRepoNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldIssueRepo, vs...))
}

// IssueRepoGT applies the GT predicate on the "issue_repo" field.
func IssueRepoGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldIssueRepo, v))
}

// IssueRepoGTE applies the GTE predicate on the "issue_repo" field.
func IssueRepoGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldIssueRepo, v))
}

// IssueRepoLT applies the LT predicate on the "issue_repo" field.
func IssueRepoLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldIssueRepo, v))
}

// IssueRepoLTE applies the LTE predicate on the "issue_repo" field.
func IssueRepoLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldIssueRepo, v))
}

// IssueRepoContains applies the Contains predicate on the "issue_repo" field.
func IssueRepoContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldIssueRepo, v))
}

// IssueRepoHasPrefix applies the HasPrefix predicate on the "issue_repo" field.
func IssueRepoHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldIssueRepo, v))
}

// IssueRepoHasSuffix applies the HasSuffix predicate on the "issue_repo" field.
func IssueRepoHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldIssueRepo, v))
}

// IssueRepoIsNil applies the IsNil predicate on the "issue_repo" field.
func IssueRepoIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldIssueRepo))
}

// IssueRepoNotNil applies the NotNil predicate on the "issue_repo" field.
func IssueRepoNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldIssueRepo))
}

// IssueRepoEqualFold applies the EqualFold predicate on the "issue_repo" field.
func IssueRepoEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldIssueRepo, v))
}

// IssueRepoContainsFold applies the ContainsFold predicate on the "issue_repo" field.
func IssueRepoContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldIssueRepo, v))
}

// IssueNumberEQ applies the EQ predicate on the "issue_number" field.
func IssueNumberEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueNumberNEQ applies the NEQ predicate on the "issue_number" field.
func IssueNumberNEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldIssueNumber, v))
}

// IssueNumberIn applies the In predicate on the "issue_number" field.
func IssueNumberIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldIssueNumber, vs...))
}

// IssueNumberNotIn applies the NotIn predicate on the "issue_number" field.
func IssueNumberNotIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldIssueNumber, vs...))
}

// IssueNumberGT applies the GT predicate on the "issue_number" field.
func IssueNumberGT(v int) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldIssueNumber, v))
}

// IssueNumberGTE applies the GTE predicate on the "issue_number" field.
func IssueNumberGTE(v int) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldIssueNumber, v))
}

// IssueNumberLT applies the LT predicate on the "issue_number" field.
func IssueNumberLT(v int) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldIssueNumber, v))
}

// IssueNumberLTE applies the LTE predicate on the "issue_number" field.
func IssueNumberLTE(v int) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldIssueNumber, v))
}

// IssueNumberIsNil applies the IsNil predicate on the "issue_number" field.
func IssueNumberIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldIssueNumber))
}

// IssueNumberNotNil applies the NotNil predicate on the "issue_number" field.
func IssueNumberNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldIssueNumber))
}

// IssueURLEQ applies the EQ predicate on the "issue_url" field.
func IssueURLEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIssueURL, v))
}

// IssueURLNEQ applies the NEQ predicate on the "issue_url" field.
func IssueURLNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldIssueURL, v))
}

// IssueURLIn applies the In predicate on the "issue_url" field.
func IssueURLIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldIssueURL, vs...))
}

// IssueURLNotIn applies the NotIn predicate on the "issue_url" field.
func IssueURLNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldIssueURL, vs...))
}

// IssueURLGT applies the GT predicate on the "issue_url" field.
func IssueURLGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldIssueURL, v))
}

// IssueURLGTE applies the GTE predicate on the "issue_url" field.
func IssueURLGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldIssueURL, v))
}

// IssueURLLT applies the LT predicate on the "issue_url" field.
func IssueURLLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldIssueURL, v))
}

// IssueURLLTE applies the LTE predicate on the "issue_url" field.
func IssueURLLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldIssueURL, v))
}

// IssueURLContains applies the Contains predicate on the "issue_url" field.
func IssueURLContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldIssueURL, v))
}

// IssueURLHasPrefix applies the HasPrefix predicate on the "issue_url" field.
func IssueURLHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldIssueURL, v))
}

// IssueURLHasSuffix applies the HasSuffix predicate on the "issue_url" field.
func IssueURLHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldIssueURL, v))
}

// IssueURLIsNil applies the IsNil predicate on the "issue_url" field.
func IssueURLIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldIssueURL))
}

// IssueURLNotNil applies the NotNil predicate on the "issue_url" field.
func IssueURLNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldIssueURL))
}

// IssueURLEqualFold applies the EqualFold predicate on the "issue_url" field.
func IssueURLEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldIssueURL, v))
}

// IssueURLContainsFold applies the ContainsFold predicate on the "issue_url" field.
func IssueURLContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldIssueURL, v))
}

// RepositoryPathEQ applies the EQ predicate on the "repository_path" field.
func RepositoryPathEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldRepositoryPath, v))
}

// RepositoryPathNEQ applies the NEQ predicate on the "repository_path" field.
func RepositoryPathNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldRepositoryPath, v))
}

// RepositoryPathIn applies the In predicate on the "repository_path" field.
func RepositoryPathIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldRepositoryPath, vs...))
}

// RepositoryPathNotIn applies the NotIn predicate on the "repository_path" field.
func RepositoryPathNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldRepositoryPath, vs...))
}

// RepositoryPathGT applies the GT predicate on the "repository_path" field.
func RepositoryPathGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldRepositoryPath, v))
}

// RepositoryPathGTE applies the GTE predicate on the "repository_path" field.
func RepositoryPathGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldRepositoryPath, v))
}

// RepositoryPathLT applies the LT predicate on the "repository_path" field.
func RepositoryPathLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldRepositoryPath, v))
}

// RepositoryPathLTE applies the LTE predicate on the "repository_path" field.
func RepositoryPathLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldRepositoryPath, v))
}

// RepositoryPathContains applies the Contains predicate on the "repository_path" field.
func RepositoryPathContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldRepositoryPath, v))
}

// RepositoryPathHasPrefix applies the HasPrefix predicate on the "repository_path" field.
func RepositoryPathHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldRepositoryPath, v))
}

// RepositoryPathHasSuffix applies the HasSuffix predicate on the "repository_path" field.
func RepositoryPathHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldRepositoryPath, v))
}

// RepositoryPathIsNil applies the IsNil predicate on the "repository_path" field.
func RepositoryPathIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldRepositoryPath))
}

// RepositoryPathNotNil applies the NotNil predicate on the "repository_path" field.
func RepositoryPathNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldRepositoryPath))
}

// RepositoryPathEqualFold applies the EqualFold predicate on the "repository_path" field.
func RepositoryPathEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldRepositoryPath, v))
}

// RepositoryPathContainsFold applies the ContainsFold predicate on the "repository_path" field.
func RepositoryPathContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldRepositoryPath, v))
}

// WorktreePathEQ applies the EQ predicate on the "worktree_path" field.
func WorktreePathEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldWorktreePath, v))
}

// WorktreePathNEQ applies the NEQ predicate on the "worktree_path" field.
func WorktreePathNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldWorktreePath, v))
}

// WorktreePathIn applies the In predicate on the "worktree_path" field.
func WorktreePathIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldWorktreePath, vs...))
}

// WorktreePathNotIn applies the NotIn predicate on the "worktree_path" field.
func WorktreePathNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldWorktreePath, vs...))
}

// WorktreePathGT applies the GT predicate on the "worktree_path" field.
func WorktreePathGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldWorktreePath, v))
}

// WorktreePathGTE applies the GTE predicate on the "worktree_path" field.
func WorktreePathGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldWorktreePath, v))
}

// WorktreePathLT applies the LT predicate on the "worktree_path" field.
func WorktreePathLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldWorktreePath, v))
}

// WorktreePathLTE applies the LTE predicate on the "worktree_path" field.
func WorktreePathLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldWorktreePath, v))
}

// WorktreePathContains applies the Contains predicate on the "worktree_path" field.
func WorktreePathContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldWorktreePath, v))
}

// WorktreePathHasPrefix applies the HasPrefix predicate on the "worktree_path" field.
func WorktreePathHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldWorktreePath, v))
}

// WorktreePathHasSuffix applies the HasSuffix predicate on the "worktree_path" field.
func WorktreePathHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldWorktreePath, v))
}

// WorktreePathIsNil applies the IsNil predicate on the "worktree_path" field.
func WorktreePathIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldWorktreePath))
}

// WorktreePathNotNil applies the NotNil predicate on the "worktree_path" field.
func WorktreePathNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldWorktreePath))
}

// WorktreePathEqualFold applies the EqualFold predicate on the "worktree_path" field.
func WorktreePathEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldWorktreePath, v))
}

// WorktreePathContainsFold applies the ContainsFold predicate on the "worktree_path" field.
func WorktreePathContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldWorktreePath, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchIsNil applies the IsNil predicate on the "branch" field.
func BranchIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldBranch))
}

// BranchNotNil applies the NotNil predicate on the "branch" field.
func BranchNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldBranch))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldBranch, v))
}

// AutomationModeEQ applies the EQ predicate on the "automation_mode" field.
func AutomationModeEQ(v AutomationMode) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldAutomationMode, v))
}

// AutomationModeNEQ applies the NEQ predicate on the "automation_mode" field.
func AutomationModeNEQ(v AutomationMode) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldAutomationMode, v))
}

// AutomationModeIn applies the In predicate on the "automation_mode" field.
func AutomationModeIn(vs ...AutomationMode) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldAutomationMode, vs...))
}

// AutomationModeNotIn applies the NotIn predicate on the "automation_mode" field.
func AutomationModeNotIn(vs ...AutomationMode) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldAutomationMode, vs...))
}

// DispatchTargetEQ applies the EQ predicate on the "dispatch_target" field.
func DispatchTargetEQ(v DispatchTarget) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldDispatchTarget, v))
}

// DispatchTargetNEQ applies the NEQ predicate on the "dispatch_target" field.
func DispatchTargetNEQ(v DispatchTarget) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldDispatchTarget, v))
}

// DispatchTargetIn applies the In predicate on the "dispatch_target" field.
func DispatchTargetIn(vs ...DispatchTarget) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldDispatchTarget, vs...))
}

// DispatchTargetNotIn applies the NotIn predicate on the "dispatch_target" field.
func DispatchTargetNotIn(vs ...DispatchTarget) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldDispatchTarget, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldStatus, vs...))
}

// AnalyzedContextIsNil applies the IsNil predicate on the "analyzed_context" field.
func AnalyzedContextIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldAnalyzedContext))
}

// AnalyzedContextNotNil applies the NotNil predicate on the "analyzed_context" field.
func AnalyzedContextNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldAnalyzedContext))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldPlan))
}

// CurrentWaveEQ applies the EQ predicate on the "current_wave" field.
func CurrentWaveEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCurrentWave, v))
}

// CurrentWaveNEQ applies the NEQ predicate on the "current_wave" field.
func CurrentWaveNEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldCurrentWave, v))
}

// CurrentWaveIn applies the In predicate on the "current_wave" field.
func CurrentWaveIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldCurrentWave, vs...))
}

// CurrentWaveNotIn applies the NotIn predicate on the "current_wave" field.
func CurrentWaveNotIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldCurrentWave, vs...))
}

// CurrentWaveGT applies the GT predicate on the "current_wave" field.
func CurrentWaveGT(v int) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldCurrentWave, v))
}

// CurrentWaveGTE applies the GTE predicate on the "current_wave" field.
func CurrentWaveGTE(v int) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldCurrentWave, v))
}

// CurrentWaveLT applies the LT predicate on the "current_wave" field.
func CurrentWaveLT(v int) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldCurrentWave, v))
}

// CurrentWaveLTE applies the LTE predicate on the "current_wave" field.
func CurrentWaveLTE(v int) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldCurrentWave, v))
}

// MaxParallelismEQ applies the EQ predicate on the "max_parallelism" field.
func MaxParallelismEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldMaxParallelism, v))
}

// MaxParallelismNEQ applies the NEQ predicate on the "max_parallelism" field.
func MaxParallelismNEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldMaxParallelism, v))
}

// MaxParallelismIn applies the In predicate on the "max_parallelism" field.
func MaxParallelismIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldMaxParallelism, vs...))
}

// MaxParallelismNotIn applies the NotIn predicate on the "max_parallelism" field.
func MaxParallelismNotIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldMaxParallelism, vs...))
}

// MaxParallelismGT applies the GT predicate on the "max_parallelism" field.
func MaxParallelismGT(v int) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldMaxParallelism, v))
}

// MaxParallelismGTE applies the GTE predicate on the "max_parallelism" field.
func MaxParallelismGTE(v int) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldMaxParallelism, v))
}

// MaxParallelismLT applies the LT predicate on the "max_parallelism" field.
func MaxParallelismLT(v int) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldMaxParallelism, v))
}

// MaxParallelismLTE applies the LTE predicate on the "max_parallelism" field.
func MaxParallelismLTE(v int) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldMaxParallelism, v))
}

// GateModeEQ applies the EQ predicate on the "gate_mode" field.
func GateModeEQ(v GateMode) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldGateMode, v))
}

// GateModeNEQ applies the NEQ predicate on the "gate_mode" field.
func GateModeNEQ(v GateMode) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldGateMode, v))
}

// GateModeIn applies the In predicate on the "gate_mode" field.
func GateModeIn(vs ...GateMode) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldGateMode, vs...))
}

// GateModeNotIn applies the NotIn predicate on the "gate_mode" field.
func GateModeNotIn(vs ...GateMode) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldGateMode, vs...))
}

// LastGateResultIsNil applies the IsNil predicate on the "last_gate_result" field.
func LastGateResultIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldLastGateResult))
}

// LastGateResultNotNil applies the NotNil predicate on the "last_gate_result" field.
func LastGateResultNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldLastGateResult))
}

// PullRequestURLEQ applies the EQ predicate on the "pull_request_url" field.
func PullRequestURLEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldPullRequestURL, v))
}

// PullRequestURLNEQ applies the NEQ predicate on the "pull_request_url" field.
func PullRequestURLNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldPullRequestURL, v))
}

// PullRequestURLIn applies the In predicate on the "pull_request_url" field.
func PullRequestURLIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldPullRequestURL, vs...))
}

// PullRequestURLNotIn applies the NotIn predicate on the "pull_request_url" field.
func PullRequestURLNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldPullRequestURL, vs...))
}

// PullRequestURLGT applies the GT predicate on the "pull_request_url" field.
func PullRequestURLGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldPullRequestURL, v))
}

// PullRequestURLGTE applies the GTE predicate on the "pull_request_url" field.
func PullRequestURLGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldPullRequestURL, v))
}

// PullRequestURLLT applies the LT predicate on the "pull_request_url" field.
func PullRequestURLLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldPullRequestURL, v))
}

// PullRequestURLLTE applies the LTE predicate on the "pull_request_url" field.
func PullRequestURLLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldPullRequestURL, v))
}

// PullRequestURLContains applies the Contains predicate on the "pull_request_url" field.
func PullRequestURLContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldPullRequestURL, v))
}

// PullRequestURLHasPrefix applies the HasPrefix predicate on the "pull_request_url" field.
func PullRequestURLHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldPullRequestURL, v))
}

// PullRequestURLHasSuffix applies the HasSuffix predicate on the "pull_request_url" field.
func PullRequestURLHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldPullRequestURL, v))
}

// PullRequestURLIsNil applies the IsNil predicate on the "pull_request_url" field.
func PullRequestURLIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldPullRequestURL))
}

// PullRequestURLNotNil applies the NotNil predicate on the "pull_request_url" field.
func PullRequestURLNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldPullRequestURL))
}

// PullRequestURLEqualFold applies the EqualFold predicate on the "pull_request_url" field.
func PullRequestURLEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldPullRequestURL, v))
}

// PullRequestURLContainsFold applies the ContainsFold predicate on the "pull_request_url" field.
func PullRequestURLContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldPullRequestURL, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldCompletedAt))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.Step) predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatMessages applies the HasEdge predicate on the "chat_messages" edge.
func HasChatMessages() predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatMessagesTable, ChatMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatMessagesWith applies the HasEdge predicate on the "chat_messages" edge with a given conditions (other predicates).
func HasChatMessagesWith(preds ...predicate.ChatMessage) predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := newChatMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.StoryEvent) predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Story) predicate.Story {
	return predicate.Story(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Story) predicate.Story {
	return predicate.Story(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Story) predicate.Story {
	return predicate.Story(sql.NotPredicates(p))
}
