// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// Story is the predicate function for story builders.
type Story func(*sql.Selector)

// StoryEvent is the predicate function for storyevent builders.
type StoryEvent func(*sql.Selector)
