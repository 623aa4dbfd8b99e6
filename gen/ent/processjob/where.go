// Code generated by ent, DO NOT EDIT.

package processjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/yeonjae-dev/ocrean/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldDocumentID, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldFormat, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldErrorMessage, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldOcrText, v))
}

// OcrMethod applies equality check predicate on the "ocr_method" field. It's identical to OcrMethodEQ.
func OcrMethod(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldOcrMethod, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldLanguage, v))
}

// Pages applies equality check predicate on the "pages" field. It's identical to PagesEQ.
func Pages(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldPages, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldConfidence, v))
}

// SentenceCount applies equality check predicate on the "sentence_count" field. It's identical to SentenceCountEQ.
func SentenceCount(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldSentenceCount, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContainsFold(FieldFormat, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContainsFold(FieldOcrText, v))
}

// OcrMethodEQ applies the EQ predicate on the "ocr_method" field.
func OcrMethodEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldOcrMethod, v))
}

// OcrMethodNEQ applies the NEQ predicate on the "ocr_method" field.
func OcrMethodNEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldOcrMethod, v))
}

// OcrMethodIn applies the In predicate on the "ocr_method" field.
func OcrMethodIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldOcrMethod, vs...))
}

// OcrMethodNotIn applies the NotIn predicate on the "ocr_method" field.
func OcrMethodNotIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldOcrMethod, vs...))
}

// OcrMethodGT applies the GT predicate on the "ocr_method" field.
func OcrMethodGT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldOcrMethod, v))
}

// OcrMethodGTE applies the GTE predicate on the "ocr_method" field.
func OcrMethodGTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldOcrMethod, v))
}

// OcrMethodLT applies the LT predicate on the "ocr_method" field.
func OcrMethodLT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldOcrMethod, v))
}

// OcrMethodLTE applies the LTE predicate on the "ocr_method" field.
func OcrMethodLTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldOcrMethod, v))
}

// OcrMethodContains applies the Contains predicate on the "ocr_method" field.
func OcrMethodContains(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContains(FieldOcrMethod, v))
}

// OcrMethodHasPrefix applies the HasPrefix predicate on the "ocr_method" field.
func OcrMethodHasPrefix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasPrefix(FieldOcrMethod, v))
}

// OcrMethodHasSuffix applies the HasSuffix predicate on the "ocr_method" field.
func OcrMethodHasSuffix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasSuffix(FieldOcrMethod, v))
}

// OcrMethodIsNil applies the IsNil predicate on the "ocr_method" field.
func OcrMethodIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldOcrMethod))
}

// OcrMethodNotNil applies the NotNil predicate on the "ocr_method" field.
func OcrMethodNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldOcrMethod))
}

// OcrMethodEqualFold applies the EqualFold predicate on the "ocr_method" field.
func OcrMethodEqualFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEqualFold(FieldOcrMethod, v))
}

// OcrMethodContainsFold applies the ContainsFold predicate on the "ocr_method" field.
func OcrMethodContainsFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContainsFold(FieldOcrMethod, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldContainsFold(FieldLanguage, v))
}

// PagesEQ applies the EQ predicate on the "pages" field.
func PagesEQ(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldPages, v))
}

// PagesNEQ applies the NEQ predicate on the "pages" field.
func PagesNEQ(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldPages, v))
}

// PagesIn applies the In predicate on the "pages" field.
func PagesIn(vs ...int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldPages, vs...))
}

// PagesNotIn applies the NotIn predicate on the "pages" field.
func PagesNotIn(vs ...int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldPages, vs...))
}

// PagesGT applies the GT predicate on the "pages" field.
func PagesGT(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldPages, v))
}

// PagesGTE applies the GTE predicate on the "pages" field.
func PagesGTE(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldPages, v))
}

// PagesLT applies the LT predicate on the "pages" field.
func PagesLT(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldPages, v))
}

// PagesLTE applies the LTE predicate on the "pages" field.
func PagesLTE(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldPages, v))
}

// PagesIsNil applies the IsNil predicate on the "pages" field.
func PagesIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldPages))
}

// PagesNotNil applies the NotNil predicate on the "pages" field.
func PagesNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldPages))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldConfidence))
}

// SentenceCountEQ applies the EQ predicate on the "sentence_count" field.
func SentenceCountEQ(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldEQ(FieldSentenceCount, v))
}

// SentenceCountNEQ applies the NEQ predicate on the "sentence_count" field.
func SentenceCountNEQ(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNEQ(FieldSentenceCount, v))
}

// SentenceCountIn applies the In predicate on the "sentence_count" field.
func SentenceCountIn(vs ...int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIn(FieldSentenceCount, vs...))
}

// SentenceCountNotIn applies the NotIn predicate on the "sentence_count" field.
func SentenceCountNotIn(vs ...int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotIn(FieldSentenceCount, vs...))
}

// SentenceCountGT applies the GT predicate on the "sentence_count" field.
func SentenceCountGT(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGT(FieldSentenceCount, v))
}

// SentenceCountGTE applies the GTE predicate on the "sentence_count" field.
func SentenceCountGTE(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldGTE(FieldSentenceCount, v))
}

// SentenceCountLT applies the LT predicate on the "sentence_count" field.
func SentenceCountLT(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLT(FieldSentenceCount, v))
}

// SentenceCountLTE applies the LTE predicate on the "sentence_count" field.
func SentenceCountLTE(v int) predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldLTE(FieldSentenceCount, v))
}

// SentenceCountIsNil applies the IsNil predicate on the "sentence_count" field.
func SentenceCountIsNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldIsNull(FieldSentenceCount))
}

// SentenceCountNotNil applies the NotNil predicate on the "sentence_count" field.
func SentenceCountNotNil() predicate.ProcessJob {
	return predicate.ProcessJob(sql.FieldNotNull(FieldSentenceCount))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ProcessJob {
	return predicate.ProcessJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ProcessJob {
	return predicate.ProcessJob(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessJob) predicate.ProcessJob {
	return predicate.ProcessJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessJob) predicate.ProcessJob {
	return predicate.ProcessJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessJob) predicate.ProcessJob {
	return predicate.ProcessJob(sql.NotPredicates(p))
}
