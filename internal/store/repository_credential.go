package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository]. Every statement filters by user_id.
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by
// the provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// ListCredentials returns every credential owned by userID, ordered by id.
// Returns an empty slice when the user has none.
func (c *credentialRepository) ListCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.buildListCredentialsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.ListCredentials").
			Int64("user_id", userID).
			Msg("failed to execute query for listing credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0, 16)

	for rows.Next() {
		credential, scanErr := scanCredential(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialRepository.ListCredentials").
				Int64("user_id", userID).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		credentials = append(credentials, credential)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "credentialRepository.ListCredentials").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return credentials, nil
}

func (c *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential, now time.Time) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.buildCreateCredentialQuery(credential, now)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCredential(c.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.CreateCredential").
			Int64("user_id", credential.UserID).
			Msg("failed to insert credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateCredential returns [ErrCredentialNotFound] when no row matches both
// id and owner, so foreign ids are indistinguishable from missing ones.
func (c *credentialRepository) UpdateCredential(ctx context.Context, credential models.Credential, now time.Time) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.buildUpdateCredentialQuery(credential, now)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanCredential(c.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(err).
			Str("func", "credentialRepository.UpdateCredential").
			Int64("user_id", credential.UserID).
			Int64("credential_id", credential.ID).
			Msg("failed to update credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (c *credentialRepository) DeleteCredential(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := c.buildDeleteCredentialQuery(id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Int64("user_id", userID).
			Int64("credential_id", id).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
