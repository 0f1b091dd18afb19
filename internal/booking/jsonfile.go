package booking

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/storage/jsonstore"
)

type FileRepository struct {
	bookings *jsonstore.Collection[Booking]
}

func NewFileRepository(dataDir string) (*FileRepository, error) {
	bookings, err := jsonstore.NewCollection[Booking](dataDir, "bookings")
	if err != nil {
		return nil, err
	}
	return &FileRepository{bookings: bookings}, nil
}

func (r *FileRepository) GetAll() ([]*Booking, error) {
	bookings, err := r.bookings.All()
	if err != nil {
		return nil, err
	}
	out := make([]*Booking, len(bookings))
	for i := range bookings {
		b := bookings[i]
		out[i] = &b
	}
	return out, nil
}

func (r *FileRepository) GetByID(id string) (*Booking, error) {
	return r.find(func(b Booking) bool { return b.ID == id })
}

func (r *FileRepository) GetByTransactionID(txID string) (*Booking, error) {
	return r.find(func(b Booking) bool { return b.TransactionID == txID })
}

func (r *FileRepository) find(match func(Booking) bool) (*Booking, error) {
	bookings, err := r.bookings.All()
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if match(bookings[i]) {
			b := bookings[i]
			return &b, nil
		}
	}
	return nil, internal.ErrBookingNotFound
}

func (r *FileRepository) Create(b *Booking) error {
	return r.bookings.Mutate(func(bookings []Booking) ([]Booking, error) {
		return append([]Booking{*b}, bookings...), nil
	})
}

func (r *FileRepository) Update(b *Booking) error {
	return r.bookings.Mutate(func(bookings []Booking) ([]Booking, error) {
		for i := range bookings {
			if bookings[i].ID == b.ID {
				bookings[i] = *b
				return bookings, nil
			}
		}
		return nil, internal.ErrBookingNotFound
	})
}
