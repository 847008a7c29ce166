package repository

import (
	"context"
	"log/slog"

	"github.com/scanworks/scanvault/gen/ent"
	entfields "github.com/scanworks/scanvault/gen/ent/structuredfields"
	"github.com/scanworks/scanvault/internal/entity"
)

type StructuredFieldsRepository interface {
	// Replace deletes any prior field set for the document and stores f.
	Replace(ctx context.Context, documentID int, f entity.StructuredFields) (*ent.StructuredFields, error)
	GetForDocument(ctx context.Context, documentID int) (*ent.StructuredFields, error)
	DeleteForDocument(ctx context.Context, documentID int) (int, error)
}

type structuredFieldsRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewStructuredFieldsRepository(entc *ent.Client, logger *slog.Logger) StructuredFieldsRepository {
	return &structuredFieldsRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *structuredFieldsRepo) Replace(ctx context.Context, documentID int, f entity.StructuredFields) (*ent.StructuredFields, error) {
	if _, err := r.DeleteForDocument(ctx, documentID); err != nil {
		return nil, err
	}
	row, err := r.ent.StructuredFields.Create().
		SetDocumentID(documentID).
		SetFormat(f.Format).
		SetDocumentType(f.DocumentType).
		SetCountryCode(f.CountryCode).
		SetSurname(f.Surname).
		SetGivenNames(f.GivenNames).
		SetDocumentNumber(f.DocumentNumber).
		SetNationality(f.Nationality).
		SetBirthDate(f.BirthDate).
		SetSex(f.Sex).
		SetExpiryDate(f.ExpiryDate).
		SetPersonalNumber(f.PersonalNumber).
		SetChecksumValid(f.ChecksumValid).
		SetRawLines(f.RawLines).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to store structured fields", "document_id", documentID, "error", err)
		return nil, err
	}
	r.logger.Info("structured fields stored",
		"document_id", documentID, "format", f.Format, "checksum_valid", f.ChecksumValid)
	return row, nil
}

func (r *structuredFieldsRepo) GetForDocument(ctx context.Context, documentID int) (*ent.StructuredFields, error) {
	row, err := r.ent.StructuredFields.Query().
		Where(entfields.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *structuredFieldsRepo) DeleteForDocument(ctx context.Context, documentID int) (int, error) {
	n, err := r.ent.StructuredFields.Delete().
		Where(entfields.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete structured fields", "document_id", documentID, "error", err)
		return 0, err
	}
	return n, nil
}
