// Code generated by ent, DO NOT EDIT.

package sessionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aureus/cardiosim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSessionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldName, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldDocumentID, v))
}

// Sex applies equality check predicate on the "sex" field. It's identical to SexEQ.
func Sex(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSex, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldCountry, v))
}

// AcademicLevel applies equality check predicate on the "academic_level" field. It's identical to AcademicLevelEQ.
func AcademicLevel(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldAcademicLevel, v))
}

// University applies equality check predicate on the "university" field. It's identical to UniversityEQ.
func University(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldUniversity, v))
}

// Experience applies equality check predicate on the "experience" field. It's identical to ExperienceEQ.
func Experience(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldExperience, v))
}

// FormalTraining applies equality check predicate on the "formal_training" field. It's identical to FormalTrainingEQ.
func FormalTraining(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldFormalTraining, v))
}

// ClinicalFrequency applies equality check predicate on the "clinical_frequency" field. It's identical to ClinicalFrequencyEQ.
func ClinicalFrequency(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldClinicalFrequency, v))
}

// Modality applies equality check predicate on the "modality" field. It's identical to ModalityEQ.
func Modality(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldModality, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldCorrect, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldTotal, v))
}

// Percent applies equality check predicate on the "percent" field. It's identical to PercentEQ.
func Percent(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldPercent, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldSessionID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldName, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldDocumentID, v))
}

// SexEQ applies the EQ predicate on the "sex" field.
func SexEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSex, v))
}

// SexNEQ applies the NEQ predicate on the "sex" field.
func SexNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldSex, v))
}

// SexIn applies the In predicate on the "sex" field.
func SexIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldSex, vs...))
}

// SexNotIn applies the NotIn predicate on the "sex" field.
func SexNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldSex, vs...))
}

// SexGT applies the GT predicate on the "sex" field.
func SexGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldSex, v))
}

// SexGTE applies the GTE predicate on the "sex" field.
func SexGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldSex, v))
}

// SexLT applies the LT predicate on the "sex" field.
func SexLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldSex, v))
}

// SexLTE applies the LTE predicate on the "sex" field.
func SexLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldSex, v))
}

// SexContains applies the Contains predicate on the "sex" field.
func SexContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldSex, v))
}

// SexHasPrefix applies the HasPrefix predicate on the "sex" field.
func SexHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldSex, v))
}

// SexHasSuffix applies the HasSuffix predicate on the "sex" field.
func SexHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldSex, v))
}

// SexEqualFold applies the EqualFold predicate on the "sex" field.
func SexEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldSex, v))
}

// SexContainsFold applies the ContainsFold predicate on the "sex" field.
func SexContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldSex, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldCountry, v))
}

// AcademicLevelEQ applies the EQ predicate on the "academic_level" field.
func AcademicLevelEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldAcademicLevel, v))
}

// AcademicLevelNEQ applies the NEQ predicate on the "academic_level" field.
func AcademicLevelNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldAcademicLevel, v))
}

// AcademicLevelIn applies the In predicate on the "academic_level" field.
func AcademicLevelIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldAcademicLevel, vs...))
}

// AcademicLevelNotIn applies the NotIn predicate on the "academic_level" field.
func AcademicLevelNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldAcademicLevel, vs...))
}

// AcademicLevelGT applies the GT predicate on the "academic_level" field.
func AcademicLevelGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldAcademicLevel, v))
}

// AcademicLevelGTE applies the GTE predicate on the "academic_level" field.
func AcademicLevelGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldAcademicLevel, v))
}

// AcademicLevelLT applies the LT predicate on the "academic_level" field.
func AcademicLevelLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldAcademicLevel, v))
}

// AcademicLevelLTE applies the LTE predicate on the "academic_level" field.
func AcademicLevelLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldAcademicLevel, v))
}

// AcademicLevelContains applies the Contains predicate on the "academic_level" field.
func AcademicLevelContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldAcademicLevel, v))
}

// AcademicLevelHasPrefix applies the HasPrefix predicate on the "academic_level" field.
func AcademicLevelHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldAcademicLevel, v))
}

// AcademicLevelHasSuffix applies the HasSuffix predicate on the "academic_level" field.
func AcademicLevelHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldAcademicLevel, v))
}

// AcademicLevelEqualFold applies the EqualFold predicate on the "academic_level" field.
func AcademicLevelEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldAcademicLevel, v))
}

// AcademicLevelContainsFold applies the ContainsFold predicate on the "academic_level" field.
func AcademicLevelContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldAcademicLevel, v))
}

// UniversityEQ applies the EQ predicate on the "university" field.
func UniversityEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldUniversity, v))
}

// UniversityNEQ applies the NEQ predicate on the "university" field.
func UniversityNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldUniversity, v))
}

// UniversityIn applies the In predicate on the "university" field.
func UniversityIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldUniversity, vs...))
}

// UniversityNotIn applies the NotIn predicate on the "university" field.
func UniversityNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldUniversity, vs...))
}

// UniversityGT applies the GT predicate on the "university" field.
func UniversityGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldUniversity, v))
}

// UniversityGTE applies the GTE predicate on the "university" field.
func UniversityGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldUniversity, v))
}

// UniversityLT applies the LT predicate on the "university" field.
func UniversityLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldUniversity, v))
}

// UniversityLTE applies the LTE predicate on the "university" field.
func UniversityLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldUniversity, v))
}

// UniversityContains applies the Contains predicate on the "university" field.
func UniversityContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldUniversity, v))
}

// UniversityHasPrefix applies the HasPrefix predicate on the "university" field.
func UniversityHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldUniversity, v))
}

// UniversityHasSuffix applies the HasSuffix predicate on the "university" field.
func UniversityHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldUniversity, v))
}

// UniversityEqualFold applies the EqualFold predicate on the "university" field.
func UniversityEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldUniversity, v))
}

// UniversityContainsFold applies the ContainsFold predicate on the "university" field.
func UniversityContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldUniversity, v))
}

// ExperienceEQ applies the EQ predicate on the "experience" field.
func ExperienceEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldExperience, v))
}

// ExperienceNEQ applies the NEQ predicate on the "experience" field.
func ExperienceNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldExperience, v))
}

// ExperienceIn applies the In predicate on the "experience" field.
func ExperienceIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldExperience, vs...))
}

// ExperienceNotIn applies the NotIn predicate on the "experience" field.
func ExperienceNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldExperience, vs...))
}

// ExperienceGT applies the GT predicate on the "experience" field.
func ExperienceGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldExperience, v))
}

// ExperienceGTE applies the GTE predicate on the "experience" field.
func ExperienceGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldExperience, v))
}

// ExperienceLT applies the LT predicate on the "experience" field.
func ExperienceLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldExperience, v))
}

// ExperienceLTE applies the LTE predicate on the "experience" field.
func ExperienceLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldExperience, v))
}

// ExperienceContains applies the Contains predicate on the "experience" field.
func ExperienceContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldExperience, v))
}

// ExperienceHasPrefix applies the HasPrefix predicate on the "experience" field.
func ExperienceHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldExperience, v))
}

// ExperienceHasSuffix applies the HasSuffix predicate on the "experience" field.
func ExperienceHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldExperience, v))
}

// ExperienceEqualFold applies the EqualFold predicate on the "experience" field.
func ExperienceEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldExperience, v))
}

// ExperienceContainsFold applies the ContainsFold predicate on the "experience" field.
func ExperienceContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldExperience, v))
}

// FormalTrainingEQ applies the EQ predicate on the "formal_training" field.
func FormalTrainingEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldFormalTraining, v))
}

// FormalTrainingNEQ applies the NEQ predicate on the "formal_training" field.
func FormalTrainingNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldFormalTraining, v))
}

// FormalTrainingIn applies the In predicate on the "formal_training" field.
func FormalTrainingIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldFormalTraining, vs...))
}

// FormalTrainingNotIn applies the NotIn predicate on the "formal_training" field.
func FormalTrainingNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldFormalTraining, vs...))
}

// FormalTrainingGT applies the GT predicate on the "formal_training" field.
func FormalTrainingGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldFormalTraining, v))
}

// FormalTrainingGTE applies the GTE predicate on the "formal_training" field.
func FormalTrainingGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldFormalTraining, v))
}

// FormalTrainingLT applies the LT predicate on the "formal_training" field.
func FormalTrainingLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldFormalTraining, v))
}

// FormalTrainingLTE applies the LTE predicate on the "formal_training" field.
func FormalTrainingLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldFormalTraining, v))
}

// FormalTrainingContains applies the Contains predicate on the "formal_training" field.
func FormalTrainingContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldFormalTraining, v))
}

// FormalTrainingHasPrefix applies the HasPrefix predicate on the "formal_training" field.
func FormalTrainingHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldFormalTraining, v))
}

// FormalTrainingHasSuffix applies the HasSuffix predicate on the "formal_training" field.
func FormalTrainingHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldFormalTraining, v))
}

// FormalTrainingEqualFold applies the EqualFold predicate on the "formal_training" field.
func FormalTrainingEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldFormalTraining, v))
}

// FormalTrainingContainsFold applies the ContainsFold predicate on the "formal_training" field.
func FormalTrainingContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldFormalTraining, v))
}

// ClinicalFrequencyEQ applies the EQ predicate on the "clinical_frequency" field.
func ClinicalFrequencyEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldClinicalFrequency, v))
}

// ClinicalFrequencyNEQ applies the NEQ predicate on the "clinical_frequency" field.
func ClinicalFrequencyNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldClinicalFrequency, v))
}

// ClinicalFrequencyIn applies the In predicate on the "clinical_frequency" field.
func ClinicalFrequencyIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldClinicalFrequency, vs...))
}

// ClinicalFrequencyNotIn applies the NotIn predicate on the "clinical_frequency" field.
func ClinicalFrequencyNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldClinicalFrequency, vs...))
}

// ClinicalFrequencyGT applies the GT predicate on the "clinical_frequency" field.
func ClinicalFrequencyGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldClinicalFrequency, v))
}

// ClinicalFrequencyGTE applies the GTE predicate on the "clinical_frequency" field.
func ClinicalFrequencyGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldClinicalFrequency, v))
}

// ClinicalFrequencyLT applies the LT predicate on the "clinical_frequency" field.
func ClinicalFrequencyLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldClinicalFrequency, v))
}

// ClinicalFrequencyLTE applies the LTE predicate on the "clinical_frequency" field.
func ClinicalFrequencyLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldClinicalFrequency, v))
}

// ClinicalFrequencyContains applies the Contains predicate on the "clinical_frequency" field.
func ClinicalFrequencyContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldClinicalFrequency, v))
}

// ClinicalFrequencyHasPrefix applies the HasPrefix predicate on the "clinical_frequency" field.
func ClinicalFrequencyHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldClinicalFrequency, v))
}

// ClinicalFrequencyHasSuffix applies the HasSuffix predicate on the "clinical_frequency" field.
func ClinicalFrequencyHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldClinicalFrequency, v))
}

// ClinicalFrequencyEqualFold applies the EqualFold predicate on the "clinical_frequency" field.
func ClinicalFrequencyEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldClinicalFrequency, v))
}

// ClinicalFrequencyContainsFold applies the ContainsFold predicate on the "clinical_frequency" field.
func ClinicalFrequencyContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldClinicalFrequency, v))
}

// ModalityEQ applies the EQ predicate on the "modality" field.
func ModalityEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldModality, v))
}

// ModalityNEQ applies the NEQ predicate on the "modality" field.
func ModalityNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldModality, v))
}

// ModalityIn applies the In predicate on the "modality" field.
func ModalityIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldModality, vs...))
}

// ModalityNotIn applies the NotIn predicate on the "modality" field.
func ModalityNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldModality, vs...))
}

// ModalityGT applies the GT predicate on the "modality" field.
func ModalityGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldModality, v))
}

// ModalityGTE applies the GTE predicate on the "modality" field.
func ModalityGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldModality, v))
}

// ModalityLT applies the LT predicate on the "modality" field.
func ModalityLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldModality, v))
}

// ModalityLTE applies the LTE predicate on the "modality" field.
func ModalityLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldModality, v))
}

// ModalityContains applies the Contains predicate on the "modality" field.
func ModalityContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldModality, v))
}

// ModalityHasPrefix applies the HasPrefix predicate on the "modality" field.
func ModalityHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldModality, v))
}

// ModalityHasSuffix applies the HasSuffix predicate on the "modality" field.
func ModalityHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldModality, v))
}

// ModalityEqualFold applies the EqualFold predicate on the "modality" field.
func ModalityEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldModality, v))
}

// ModalityContainsFold applies the ContainsFold predicate on the "modality" field.
func ModalityContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldModality, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldCorrect, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldTotal, v))
}

// PercentEQ applies the EQ predicate on the "percent" field.
func PercentEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldPercent, v))
}

// PercentNEQ applies the NEQ predicate on the "percent" field.
func PercentNEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldPercent, v))
}

// PercentIn applies the In predicate on the "percent" field.
func PercentIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldPercent, vs...))
}

// PercentNotIn applies the NotIn predicate on the "percent" field.
func PercentNotIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldPercent, vs...))
}

// PercentGT applies the GT predicate on the "percent" field.
func PercentGT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldPercent, v))
}

// PercentGTE applies the GTE predicate on the "percent" field.
func PercentGTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldPercent, v))
}

// PercentLT applies the LT predicate on the "percent" field.
func PercentLT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldPercent, v))
}

// PercentLTE applies the LTE predicate on the "percent" field.
func PercentLTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldPercent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionResult) predicate.SessionResult {
	return predicate.SessionResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionResult) predicate.SessionResult {
	return predicate.SessionResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionResult) predicate.SessionResult {
	return predicate.SessionResult(sql.NotPredicates(p))
}
