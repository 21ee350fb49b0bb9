package store

import (
	"fmt"

	"github.com/MKhiriev/user-directory/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the column order every user query selects and scans.
var userColumns = []string{"id", "name", "email", "created_at"}

const returningUserColumns = "RETURNING id, name, email, created_at"

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateUserQuery(b sq.StatementBuilderType, input models.UserInput) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("name", "email").
		Values(input.Name, input.Email).
		Suffix(returningUserColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, input models.UserInput) (string, []any, error) {
	query, args, err := b.
		Update(usersTable).
		Set("name", input.Name).
		Set("email", input.Email).
		Where(sq.Eq{"id": id}).
		Suffix(returningUserColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
