package utils

import (
	"encoding/hex"

	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/entity"
)

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                  e.ID,
		ContentHash:         hex.EncodeToString(e.ContentHash),
		SourcePath:          e.SourcePath,
		Filename:            e.Filename,
		FileKind:            e.FileKind,
		FileSize:            e.FileSize,
		UploadedAt:          e.UploadedAt,
		ProcessingStatus:    e.ProcessingStatus,
		VersionNumber:       e.VersionNumber,
		ParentDocumentID:    e.ParentDocumentID,
		PageCount:           e.PageCount,
		HasStructuredFields: e.HasStructuredFields,
	}
}

func ToAttempt(e *ent.ExtractionAttempt) *entity.Attempt {
	return &entity.Attempt{
		ID:            e.ID,
		DocumentID:    e.DocumentID,
		AttemptNumber: e.AttemptNumber,
		Succeeded:     e.Succeeded,
		FullText:      e.FullText,
		Blocks:        e.Blocks,
		Language:      e.Language,
		Confidence:    e.Confidence,
		Engine:        e.Engine,
		ElapsedMS:     e.ElapsedMs,
		CreatedAt:     e.CreatedAt,
	}
}

func ToStructuredFields(e *ent.StructuredFields) *entity.StructuredFields {
	return &entity.StructuredFields{
		DocumentID:     e.DocumentID,
		Format:         e.Format,
		DocumentType:   e.DocumentType,
		CountryCode:    e.CountryCode,
		Surname:        e.Surname,
		GivenNames:     e.GivenNames,
		DocumentNumber: e.DocumentNumber,
		Nationality:    e.Nationality,
		BirthDate:      e.BirthDate,
		Sex:            e.Sex,
		ExpiryDate:     e.ExpiryDate,
		PersonalNumber: e.PersonalNumber,
		ChecksumValid:  e.ChecksumValid,
		RawLines:       e.RawLines,
	}
}

func ToFace(e *ent.FaceRecord) *entity.Face {
	return &entity.Face{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		PageNumber: e.PageNumber,
		Box: entity.FaceBox{
			X: e.BoxX,
			Y: e.BoxY,
			W: e.BoxW,
			H: e.BoxH,
		},
		Confidence: e.Confidence,
		Quality:    e.Quality,
		IndexID:    e.IndexID,
		DetectedAt: e.DetectedAt,
	}
}

func ToFailure(e *ent.ProcessingFailure) *entity.Failure {
	return &entity.Failure{
		ID:            e.ID,
		DocumentID:    e.DocumentID,
		Category:      e.Category,
		AttemptNumber: e.AttemptNumber,
		Message:       e.Message,
		OccurredAt:    e.OccurredAt,
	}
}
