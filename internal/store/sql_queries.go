package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/aegis-vault/models"
)

const (
	usersTable       = "users"
	credentialsTable = "credentials"
)

var (
	userColumns = []string{
		"id",
		"username",
		"email",
		"password_hash",
		"encryption_salt",
		"totp_secret",
		"last_totp_step",
		"created_at",
	}

	credentialColumns = []string{
		"id",
		"user_id",
		"website",
		"username",
		"password",
		"notes",
		"created_at",
		"updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "email", "password_hash", "encryption_salt", "totp_secret", "created_at").
		Values(
			user.Username,
			user.Email,
			user.PasswordHash,
			user.EncryptionSalt,
			sql.NullString{String: user.TOTPSecret, Valid: user.TOTPSecret != ""},
			toMicros(user.CreatedAt),
		).
		Suffix(returning([]string{"id"})).
		ToSql()
}

func (db *DB) buildUserExistsQuery(username, email string) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(usersTable).
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		ToSql()
}

func (db *DB) buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func (db *DB) buildAdvanceTOTPStepQuery(userID, step int64) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("last_totp_step", step).
		Where(sq.Eq{"id": userID}).
		Where(sq.Or{sq.Eq{"last_totp_step": nil}, sq.Lt{"last_totp_step": step}}).
		ToSql()
}

func (db *DB) buildListCredentialsQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
}

func (db *DB) buildCreateCredentialQuery(credential models.Credential, now time.Time) (string, []any, error) {
	ts := toMicros(now)
	return db.builder.
		Insert(credentialsTable).
		Columns("user_id", "website", "username", "password", "notes", "created_at", "updated_at").
		Values(credential.UserID, credential.Website, credential.Username, credential.Password, credential.Notes, ts, ts).
		Suffix(returning(credentialColumns)).
		ToSql()
}

// buildUpdateCredentialQuery never moves updated_at backwards, even when the
// caller's clock is behind the stored value.
func (db *DB) buildUpdateCredentialQuery(credential models.Credential, now time.Time) (string, []any, error) {
	return db.builder.
		Update(credentialsTable).
		Set("website", credential.Website).
		Set("username", credential.Username).
		Set("password", credential.Password).
		Set("notes", credential.Notes).
		Set("updated_at", sq.Expr(db.greatest()+"(updated_at, ?)", toMicros(now))).
		Where(sq.Eq{"id": credential.ID, "user_id": credential.UserID}).
		Suffix(returning(credentialColumns)).
		ToSql()
}

func (db *DB) buildDeleteCredentialQuery(id, userID int64) (string, []any, error) {
	return db.builder.
		Delete(credentialsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user       models.User
		totpSecret sql.NullString
		lastStep   sql.NullInt64
		createdAt  int64
	)

	if err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.EncryptionSalt,
		&totpSecret,
		&lastStep,
		&createdAt,
	); err != nil {
		return models.User{}, err
	}

	user.TOTPSecret = totpSecret.String
	if lastStep.Valid {
		step := lastStep.Int64
		user.LastTOTPStep = &step
	}
	user.CreatedAt = fromMicros(createdAt)

	return user, nil
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var (
		credential models.Credential
		createdAt  int64
		updatedAt  int64
	)

	if err := row.Scan(
		&credential.ID,
		&credential.UserID,
		&credential.Website,
		&credential.Username,
		&credential.Password,
		&credential.Notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		return models.Credential{}, err
	}

	credential.CreatedAt = fromMicros(createdAt)
	credential.UpdatedAt = fromMicros(updatedAt)

	return credential, nil
}
