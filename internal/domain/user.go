package domain

type User struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	EmpID      string `db:"emp_id" json:"emp_id"`
	Email      string `db:"email" json:"email"`
	Hash       string `db:"password_hash" json:"-"`
	Role       string `db:"role" json:"role"`
	Department string `db:"department" json:"department"`
}

// Address is where feedback for this user lands. Accounts registered
// without a contact email fall back to the employee id.
func (u *User) Address() string {
	if u.Email != "" {
		return u.Email
	}
	return u.EmpID
}
