package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/logger"
	"videostore-admin/internal/repository"
)

type staffService struct {
	staffRepo repository.StaffRepository
	timeout   time.Duration
}

func NewStaffService(staffRepo repository.StaffRepository, timeout time.Duration) StaffService {
	return &staffService{staffRepo: staffRepo, timeout: timeout}
}

func (s *staffService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.staffRepo.List(ctx)
}

// AddStaff hashes the login password before it reaches the store; the
// clear text never leaves this method.
func (s *staffService) AddStaff(ctx context.Context, ns *domain.NewStaff) (int, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(ns.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.staffRepo.Create(ctx, ns, string(hash))
	logger.DatabaseResult("AddStaff", err, "staff_id", id, "username", ns.Username)
	return id, err
}

func (s *staffService) UpdateStaff(ctx context.Context, st *domain.Staff) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.staffRepo.Update(ctx, st)
}

func (s *staffService) DeleteStaff(ctx context.Context, id int) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	err := s.staffRepo.Delete(ctx, id)
	logger.DatabaseResult("DeleteStaff", err, "staff_id", id)
	return err
}
