package service

import (
	"context"
	"time"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/logger"
	"videostore-admin/internal/repository"
)

type customerService struct {
	customerRepo  repository.CustomerRepository
	dashboardRepo repository.DashboardRepository
	timeout       time.Duration
}

func NewCustomerService(customerRepo repository.CustomerRepository, dashboardRepo repository.DashboardRepository, timeout time.Duration) CustomerService {
	return &customerService{customerRepo: customerRepo, dashboardRepo: dashboardRepo, timeout: timeout}
}

func (s *customerService) SearchCustomers(ctx context.Context, search string) ([]domain.Customer, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.customerRepo.Search(ctx, search)
}

func (s *customerService) AddCustomer(ctx context.Context, nc *domain.NewCustomer) (int, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	id, err := s.customerRepo.Create(ctx, nc)
	logger.DatabaseResult("AddCustomer", err, "customer_id", id)
	return id, err
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.customerRepo.Update(ctx, c)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	err := s.customerRepo.Delete(ctx, id)
	logger.DatabaseResult("DeleteCustomer", err, "customer_id", id)
	return err
}

func (s *customerService) ListCities(ctx context.Context) ([]domain.City, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.dashboardRepo.ListCities(ctx)
}
