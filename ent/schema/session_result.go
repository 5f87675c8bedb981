package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionResult is one finished practice session with the participant's
// demographics and score. The mixin timestamp is the recording time.
type SessionResult struct {
	ent.Schema
}

func (SessionResult) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the practice session"),
		field.String("name").
			Default("").
			Comment("Participant full name"),
		field.String("document_id").
			Default("").
			Comment("Identity document number"),
		field.String("sex").Default(""),
		field.String("country").Default(""),
		field.String("academic_level").Default(""),
		field.String("university").Default(""),
		field.String("experience").Default(""),
		field.String("formal_training").Default(""),
		field.String("clinical_frequency").Default(""),
		field.String("modality").
			Comment("Session modality label"),
		field.Int("correct").
			Comment("Questions answered correctly"),
		field.Int("total").
			Comment("Questions asked"),
		field.Int("percent").
			Comment("Rounded score percentage"),
	}
}

func (SessionResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
