// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/johnazariah/aura-sub009/ent/chatmessage"
	"github.com/johnazariah/aura-sub009/ent/schema"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/ent/storyevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescAttempts is the schema descriptor for attempts field.
	stepDescAttempts := stepFields[14].Descriptor()
	// step.DefaultAttempts holds the default value on creation for the attempts field.
	step.DefaultAttempts = stepDescAttempts.Default.(int)
	// stepDescNeedsRework is the schema descriptor for needs_rework field.
	stepDescNeedsRework := stepFields[18].Descriptor()
	// step.DefaultNeedsRework holds the default value on creation for the needs_rework field.
	step.DefaultNeedsRework = stepDescNeedsRework.Default.(bool)
	storyFields := schema.Story{}.Fields()
	_ = storyFields
	// storyDescCurrentWave is the schema descriptor for current_wave field.
	storyDescCurrentWave := storyFields[16].Descriptor()
	// story.DefaultCurrentWave holds the default value on creation for the current_wave field.
	story.DefaultCurrentWave = storyDescCurrentWave.Default.(int)
	// storyDescMaxParallelism is the schema descriptor for max_parallelism field.
	storyDescMaxParallelism := storyFields[17].Descriptor()
	// story.DefaultMaxParallelism holds the default value on creation for the max_parallelism field.
	story.DefaultMaxParallelism = storyDescMaxParallelism.Default.(int)
	// storyDescCreatedAt is the schema descriptor for created_at field.
	storyDescCreatedAt := storyFields[22].Descriptor()
	// story.DefaultCreatedAt holds the default value on creation for the created_at field.
	story.DefaultCreatedAt = storyDescCreatedAt.Default.(func() time.Time)
	// storyDescUpdatedAt is the schema descriptor for updated_at field.
	storyDescUpdatedAt := storyFields[23].Descriptor()
	// story.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	story.DefaultUpdatedAt = storyDescUpdatedAt.Default.(func() time.Time)
	// story.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	story.UpdateDefaultUpdatedAt = storyDescUpdatedAt.UpdateDefault.(func() time.Time)
	storyeventFields := schema.StoryEvent{}.Fields()
	_ = storyeventFields
	// storyeventDescCreatedAt is the schema descriptor for created_at field.
	storyeventDescCreatedAt := storyeventFields[4].Descriptor()
	// storyevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	storyevent.DefaultCreatedAt = storyeventDescCreatedAt.Default.(func() time.Time)
}
