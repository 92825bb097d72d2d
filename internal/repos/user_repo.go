package repos

import (
	"feedbackhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmpID(empID string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,name,emp_id,email,password_hash,role,department FROM users WHERE emp_id=?`, empID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,name,emp_id,email,password_hash,role,department FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert stores a new user and returns its row id.
func (r *UserRepo) Insert(u *domain.User) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO users(name,emp_id,email,password_hash,role,department)
	                       VALUES(?,?,?,?,?,?)`,
		u.Name, u.EmpID, u.Email, u.Hash, u.Role, u.Department)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
