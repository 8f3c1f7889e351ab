package category

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to limit categories.
func (s *Service) List(limit int) []Category {
	items, err := s.repo.List(limit)
	if err != nil {
		return []Category{}
	}
	return items
}
