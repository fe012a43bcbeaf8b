package user

// User is the persisted record. The store assigns ID on creation and
// CreatedAt is written once by the service, never on update.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	CreatedAt string `json:"created_at"`
}

// UserView is the shape exposed over HTTP. It mirrors User field for field;
// the pointer ID encodes as null until the store has assigned one.
type UserView struct {
	ID        *int   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	CreatedAt string `json:"created_at"`
}

func ToView(u User) UserView {
	id := u.ID
	return UserView{
		ID:        &id,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}

// ApplyUpdate copies the client-writable fields onto an existing record.
// ID and CreatedAt are deliberately not part of the copy set.
func ApplyUpdate(view UserView, u *User) {
	u.Name = view.Name
	u.Email = view.Email
	u.Age = view.Age
}
