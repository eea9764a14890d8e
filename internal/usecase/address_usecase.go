package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated   = errors.New("sign-in required")
	ErrAddressNotFound   = errors.New("address not found")
	ErrInvalidAddressRef = errors.New("invalid address id")
)

type IAddressUseCase interface {
	List(ctx context.Context, userID string) ([]entities.Address, error)
	Get(ctx context.Context, userID, addressID string) (entities.Address, error)
	Add(ctx context.Context, userID string, a entities.Address) (entities.Address, error)
}

type AddressUseCase struct {
	repo interfaces.IAddressRepository
	now  func() time.Time
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(repo interfaces.IAddressRepository) *AddressUseCase {
	return &AddressUseCase{repo: repo, now: time.Now}
}

func (u *AddressUseCase) List(ctx context.Context, userID string) ([]entities.Address, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return u.repo.ListByUserID(ctx, userID)
}

// Get reads the address by id so one added a moment ago is found. Addresses
// of other users are reported as not found.
func (u *AddressUseCase) Get(ctx context.Context, userID, addressID string) (entities.Address, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Address{}, ErrUnauthenticated
	}
	addressID = strings.TrimSpace(addressID)
	if addressID == "" {
		return entities.Address{}, ErrInvalidAddressRef
	}
	a, err := u.repo.GetByID(ctx, addressID)
	if err != nil {
		return entities.Address{}, err
	}
	if a.ID == "" || a.UserID != userID {
		return entities.Address{}, ErrAddressNotFound
	}
	return a, nil
}

// Add stores a new address. The first address of a user becomes the default.
// When the new address is the default, previous defaults are cleared one by
// one; a failure there is logged and leaves more than one default behind.
func (u *AddressUseCase) Add(ctx context.Context, userID string, a entities.Address) (entities.Address, error) {
	existing, err := u.List(ctx, userID)
	if err != nil {
		return entities.Address{}, err
	}
	if err := a.Validate(); err != nil {
		return entities.Address{}, err
	}

	a.ID = uuid.NewString()
	a.UserID = strings.TrimSpace(userID)
	a.CreatedAt = u.now().UTC()
	if len(existing) == 0 {
		a.IsDefault = true
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[address][usecase] create failed user_id=%s err=%v", a.UserID, err)
		return entities.Address{}, err
	}

	if created.IsDefault {
		for _, prev := range existing {
			if !prev.IsDefault {
				continue
			}
			if err := u.repo.SetDefault(ctx, prev.ID, false); err != nil {
				log.Printf("[address][usecase] clearing default failed user_id=%s address_id=%s err=%v", a.UserID, prev.ID, err)
			}
		}
	}
	log.Printf("[address][usecase] created user_id=%s address_id=%s default=%t", created.UserID, created.ID, created.IsDefault)
	return created, nil
}
