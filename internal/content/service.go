package content

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Testimonials() []Testimonial {
	items, err := s.repo.Testimonials()
	if err != nil {
		return []Testimonial{}
	}
	return items
}

func (s *Service) BlogPosts() []BlogPost {
	items, err := s.repo.BlogPosts()
	if err != nil {
		return []BlogPost{}
	}
	return items
}
