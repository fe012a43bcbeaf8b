package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT id, name, email, age, created_at
		FROM users
		ORDER BY id
	`
	getUserByIDQuery = `
		SELECT id, name, email, age, created_at
		FROM users
		WHERE id = $1
	`

	insertUserQuery = `
		INSERT INTO users (name, email, age, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	updateUserQuery = `
		UPDATE users
		SET name = $1,
			email = $2,
			age = $3
		WHERE id = $4
	`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, user)
	}

	return users
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(getUserByIDQuery, id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

// Create inserts the record and returns it carrying the generated id.
// A duplicate email violates the unique constraint and comes back as the
// driver's own error, untranslated.
func (r *PostgresRepository) Create(user User) (User, error) {
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		user.Name,
		user.Email,
		user.Age,
		user.CreatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) Update(id int, userUpdate User) (User, error) {
	result, err := r.db.Exec(
		updateUserQuery,
		userUpdate.Name,
		userUpdate.Email,
		userUpdate.Age,
		id,
	)
	if err != nil {
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByID(id)
}

// Delete is idempotent: a missing id deletes zero rows and returns nil.
func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(deleteUserQuery, id)
	return err
}

func scanUser(scanner rowScanner) (User, error) {
	user := User{}
	var createdAt sql.NullString

	if err := scanner.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Age,
		&createdAt,
	); err != nil {
		return User{}, err
	}

	if createdAt.Valid {
		user.CreatedAt = createdAt.String
	}

	return user, nil
}
