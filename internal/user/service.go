package user

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []UserView {
	users := s.repo.List()
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, ToView(u))
	}
	return views
}

func (s *Service) GetByID(id int) (UserView, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return UserView{}, err
	}
	return ToView(u), nil
}

// Create discards any client-supplied id, stamps the creation date and
// persists the record. The returned view carries the store-assigned id.
func (s *Service) Create(view UserView) (UserView, error) {
	u := User{
		Name:      view.Name,
		Email:     view.Email,
		Age:       view.Age,
		CreatedAt: time.Now().UTC().Format("2006-01-02"),
	}

	created, err := s.repo.Create(u)
	if err != nil {
		return UserView{}, err
	}
	return ToView(created), nil
}

func (s *Service) Update(id int, view UserView) (UserView, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return UserView{}, err
	}

	ApplyUpdate(view, &u)

	updated, err := s.repo.Update(id, u)
	if err != nil {
		return UserView{}, err
	}
	return ToView(updated), nil
}

// Delete delegates to the store's idempotent delete and never reports a
// missing id as an error.
func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
