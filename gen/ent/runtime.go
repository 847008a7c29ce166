// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/scanworks/scanvault/db/ent/schema"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/gen/ent/facerecord"
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
	"github.com/scanworks/scanvault/gen/ent/searchlog"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[0].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[1].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileKind is the schema descriptor for file_kind field.
	documentDescFileKind := documentFields[3].Descriptor()
	// document.FileKindValidator is a validator for the "file_kind" field. It is called by the builders before save.
	document.FileKindValidator = func() func(string) error {
		validators := documentDescFileKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_kind string) error {
			for _, fn := range fns {
				if err := fn(file_kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[4].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int64) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[5].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescProcessingStatus is the schema descriptor for processing_status field.
	documentDescProcessingStatus := documentFields[6].Descriptor()
	// document.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	document.DefaultProcessingStatus = documentDescProcessingStatus.Default.(string)
	// document.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	document.ProcessingStatusValidator = documentDescProcessingStatus.Validators[0].(func(string) error)
	// documentDescVersionNumber is the schema descriptor for version_number field.
	documentDescVersionNumber := documentFields[7].Descriptor()
	// document.DefaultVersionNumber holds the default value on creation for the version_number field.
	document.DefaultVersionNumber = documentDescVersionNumber.Default.(int)
	// document.VersionNumberValidator is a validator for the "version_number" field. It is called by the builders before save.
	document.VersionNumberValidator = documentDescVersionNumber.Validators[0].(func(int) error)
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[9].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// document.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	document.PageCountValidator = documentDescPageCount.Validators[0].(func(int) error)
	// documentDescHasStructuredFields is the schema descriptor for has_structured_fields field.
	documentDescHasStructuredFields := documentFields[10].Descriptor()
	// document.DefaultHasStructuredFields holds the default value on creation for the has_structured_fields field.
	document.DefaultHasStructuredFields = documentDescHasStructuredFields.Default.(bool)
	extractionattemptFields := schema.ExtractionAttempt{}.Fields()
	_ = extractionattemptFields
	// extractionattemptDescAttemptNumber is the schema descriptor for attempt_number field.
	extractionattemptDescAttemptNumber := extractionattemptFields[1].Descriptor()
	// extractionattempt.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	extractionattempt.AttemptNumberValidator = extractionattemptDescAttemptNumber.Validators[0].(func(int) error)
	// extractionattemptDescSucceeded is the schema descriptor for succeeded field.
	extractionattemptDescSucceeded := extractionattemptFields[2].Descriptor()
	// extractionattempt.DefaultSucceeded holds the default value on creation for the succeeded field.
	extractionattempt.DefaultSucceeded = extractionattemptDescSucceeded.Default.(bool)
	// extractionattemptDescConfidence is the schema descriptor for confidence field.
	extractionattemptDescConfidence := extractionattemptFields[6].Descriptor()
	// extractionattempt.DefaultConfidence holds the default value on creation for the confidence field.
	extractionattempt.DefaultConfidence = extractionattemptDescConfidence.Default.(float32)
	// extractionattemptDescEngine is the schema descriptor for engine field.
	extractionattemptDescEngine := extractionattemptFields[7].Descriptor()
	// extractionattempt.EngineValidator is a validator for the "engine" field. It is called by the builders before save.
	extractionattempt.EngineValidator = extractionattemptDescEngine.Validators[0].(func(string) error)
	// extractionattemptDescElapsedMs is the schema descriptor for elapsed_ms field.
	extractionattemptDescElapsedMs := extractionattemptFields[8].Descriptor()
	// extractionattempt.ElapsedMsValidator is a validator for the "elapsed_ms" field. It is called by the builders before save.
	extractionattempt.ElapsedMsValidator = extractionattemptDescElapsedMs.Validators[0].(func(int64) error)
	// extractionattemptDescCreatedAt is the schema descriptor for created_at field.
	extractionattemptDescCreatedAt := extractionattemptFields[9].Descriptor()
	// extractionattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionattempt.DefaultCreatedAt = extractionattemptDescCreatedAt.Default.(func() time.Time)
	facerecordFields := schema.FaceRecord{}.Fields()
	_ = facerecordFields
	// facerecordDescPageNumber is the schema descriptor for page_number field.
	facerecordDescPageNumber := facerecordFields[1].Descriptor()
	// facerecord.DefaultPageNumber holds the default value on creation for the page_number field.
	facerecord.DefaultPageNumber = facerecordDescPageNumber.Default.(int)
	// facerecord.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	facerecord.PageNumberValidator = facerecordDescPageNumber.Validators[0].(func(int) error)
	// facerecordDescBoxW is the schema descriptor for box_w field.
	facerecordDescBoxW := facerecordFields[4].Descriptor()
	// facerecord.BoxWValidator is a validator for the "box_w" field. It is called by the builders before save.
	facerecord.BoxWValidator = facerecordDescBoxW.Validators[0].(func(int) error)
	// facerecordDescBoxH is the schema descriptor for box_h field.
	facerecordDescBoxH := facerecordFields[5].Descriptor()
	// facerecord.BoxHValidator is a validator for the "box_h" field. It is called by the builders before save.
	facerecord.BoxHValidator = facerecordDescBoxH.Validators[0].(func(int) error)
	// facerecordDescDetectedAt is the schema descriptor for detected_at field.
	facerecordDescDetectedAt := facerecordFields[9].Descriptor()
	// facerecord.DefaultDetectedAt holds the default value on creation for the detected_at field.
	facerecord.DefaultDetectedAt = facerecordDescDetectedAt.Default.(func() time.Time)
	processingfailureFields := schema.ProcessingFailure{}.Fields()
	_ = processingfailureFields
	// processingfailureDescCategory is the schema descriptor for category field.
	processingfailureDescCategory := processingfailureFields[1].Descriptor()
	// processingfailure.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	processingfailure.CategoryValidator = func() func(string) error {
		validators := processingfailureDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingfailureDescAttemptNumber is the schema descriptor for attempt_number field.
	processingfailureDescAttemptNumber := processingfailureFields[2].Descriptor()
	// processingfailure.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	processingfailure.DefaultAttemptNumber = processingfailureDescAttemptNumber.Default.(int)
	// processingfailure.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	processingfailure.AttemptNumberValidator = processingfailureDescAttemptNumber.Validators[0].(func(int) error)
	// processingfailureDescOccurredAt is the schema descriptor for occurred_at field.
	processingfailureDescOccurredAt := processingfailureFields[4].Descriptor()
	// processingfailure.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	processingfailure.DefaultOccurredAt = processingfailureDescOccurredAt.Default.(func() time.Time)
	searchlogFields := schema.SearchLog{}.Fields()
	_ = searchlogFields
	// searchlogDescSearchType is the schema descriptor for search_type field.
	searchlogDescSearchType := searchlogFields[0].Descriptor()
	// searchlog.SearchTypeValidator is a validator for the "search_type" field. It is called by the builders before save.
	searchlog.SearchTypeValidator = func() func(string) error {
		validators := searchlogDescSearchType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(search_type string) error {
			for _, fn := range fns {
				if err := fn(search_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// searchlogDescQueryHash is the schema descriptor for query_hash field.
	searchlogDescQueryHash := searchlogFields[1].Descriptor()
	// searchlog.QueryHashValidator is a validator for the "query_hash" field. It is called by the builders before save.
	searchlog.QueryHashValidator = searchlogDescQueryHash.Validators[0].(func(string) error)
	// searchlogDescResultCount is the schema descriptor for result_count field.
	searchlogDescResultCount := searchlogFields[4].Descriptor()
	// searchlog.DefaultResultCount holds the default value on creation for the result_count field.
	searchlog.DefaultResultCount = searchlogDescResultCount.Default.(int)
	// searchlog.ResultCountValidator is a validator for the "result_count" field. It is called by the builders before save.
	searchlog.ResultCountValidator = searchlogDescResultCount.Validators[0].(func(int) error)
	// searchlogDescElapsedMs is the schema descriptor for elapsed_ms field.
	searchlogDescElapsedMs := searchlogFields[5].Descriptor()
	// searchlog.ElapsedMsValidator is a validator for the "elapsed_ms" field. It is called by the builders before save.
	searchlog.ElapsedMsValidator = searchlogDescElapsedMs.Validators[0].(func(int64) error)
	// searchlogDescExecutedAt is the schema descriptor for executed_at field.
	searchlogDescExecutedAt := searchlogFields[6].Descriptor()
	// searchlog.DefaultExecutedAt holds the default value on creation for the executed_at field.
	searchlog.DefaultExecutedAt = searchlogDescExecutedAt.Default.(func() time.Time)
	structuredfieldsFields := schema.StructuredFields{}.Fields()
	_ = structuredfieldsFields
	// structuredfieldsDescFormat is the schema descriptor for format field.
	structuredfieldsDescFormat := structuredfieldsFields[1].Descriptor()
	// structuredfields.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	structuredfields.FormatValidator = func() func(string) error {
		validators := structuredfieldsDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// structuredfieldsDescChecksumValid is the schema descriptor for checksum_valid field.
	structuredfieldsDescChecksumValid := structuredfieldsFields[12].Descriptor()
	// structuredfields.DefaultChecksumValid holds the default value on creation for the checksum_valid field.
	structuredfields.DefaultChecksumValid = structuredfieldsDescChecksumValid.Default.(bool)
	// structuredfieldsDescCreatedAt is the schema descriptor for created_at field.
	structuredfieldsDescCreatedAt := structuredfieldsFields[14].Descriptor()
	// structuredfields.DefaultCreatedAt holds the default value on creation for the created_at field.
	structuredfields.DefaultCreatedAt = structuredfieldsDescCreatedAt.Default.(func() time.Time)
}
