package content

import "sync"

type Repository interface {
	Testimonials() ([]Testimonial, error)
	BlogPosts() ([]BlogPost, error)
}

type InMemoryRepository struct {
	mu           sync.RWMutex
	testimonials []Testimonial
	posts        []BlogPost
}

func NewInMemoryRepository(testimonials []Testimonial, posts []BlogPost) *InMemoryRepository {
	r := &InMemoryRepository{}
	r.testimonials = append(r.testimonials, testimonials...)
	r.posts = append(r.posts, posts...)
	return r
}

func (r *InMemoryRepository) Testimonials() ([]Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Testimonial, len(r.testimonials))
	copy(out, r.testimonials)
	return out, nil
}

func (r *InMemoryRepository) BlogPosts() ([]BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]BlogPost, len(r.posts))
	copy(out, r.posts)
	return out, nil
}
