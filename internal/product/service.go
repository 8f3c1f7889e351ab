package product

// ServiceInterface allows other packages (cart, order, recommended) to depend
// on the product service without importing the concrete type.
type ServiceInterface interface {
	List() []Product
	GetByID(id int) (Product, error)
	GetBySlug(slug string) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Product, error) {
	return s.repo.GetBySlug(slug)
}

// Search runs the catalog search over the current product list.
func (s *Service) Search(query string, f Filters) []Product {
	return Search(s.repo.List(), query, f)
}

// Brands returns the static brand directory.
func (s *Service) Brands() []BrandInfo {
	return DefaultBrands()
}

// ResetProducts replaces all products with the given list (used for seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
