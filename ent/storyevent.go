// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/ent/storyevent"
)

// StoryEvent is the model entity for the StoryEvent schema.
type StoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// StoryID holds the value of the "story_id" field.
	StoryID string `json:"story_id,omitempty"`
	// e.g. 'step-started', 'gate-passed'
	EventType string `json:"event_type,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StoryEventQuery when eager-loading is set.
	Edges        StoryEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StoryEventEdges holds the relations/edges for other nodes in the graph.
type StoryEventEdges struct {
	// Story holds the value of the story edge.
	Story *Story `json:"story,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StoryOrErr returns the Story value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StoryEventEdges) StoryOrErr() (*Story, error) {
	if e.Story != nil {
		return e.Story, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: story.Label}
	}
	return nil, &NotLoadedError{edge: "story"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldPayload:
			values[i] = new([]byte)
		case storyevent.FieldID:
			values[i] = new(sql.NullInt64)
		case storyevent.FieldStoryID, storyevent.FieldEventType:
			values[i] = new(sql.NullString)
		case storyevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoryEvent fields.
func (_m *StoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case storyevent.FieldStoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field story_id", values[i])
			} else if value.Valid {
				_m.StoryID = value.String
			}
		case storyevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case storyevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case storyevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStory queries the "story" edge of the StoryEvent entity.
func (_m *StoryEvent) QueryStory() *StoryQuery {
	return NewStoryEventClient(_m.config).QueryStory(_m)
}

// Update returns a builder for updating this StoryEvent.
// Note that you need to call StoryEvent.Unwrap() before calling this method if this StoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoryEvent) Update() *StoryEventUpdateOne {
	return NewStoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoryEvent) Unwrap() *StoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StoryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("story_id=")
	builder.WriteString(_m.StoryID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StoryEvents is a parsable slice of StoryEvent.
type StoryEvents []*StoryEvent
