package seating

import (
	"context"
	"testing"

	"cinebox/internal/shared/fault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLayoutProvider struct {
	mock.Mock
}

func (m *mockLayoutProvider) LayoutForShow(ctx context.Context, showID int64) (*HallLayout, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*HallLayout), args.Error(1)
}

type mockBookedSeatProvider struct {
	mock.Mock
}

func (m *mockBookedSeatProvider) BookedSeats(ctx context.Context, showID int64) (map[int]struct{}, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]struct{}), args.Error(1)
}

func TestSeatMapForShow(t *testing.T) {
	layouts := new(mockLayoutProvider)
	booked := new(mockBookedSeatProvider)
	svc := NewService(layouts, booked, nil)

	layouts.On("LayoutForShow", mock.Anything, int64(4242)).
		Return(&HallLayout{GoldCapacity: 3, StandardCapacity: 12}, nil)
	booked.On("BookedSeats", mock.Anything, int64(4242)).
		Return(map[int]struct{}{1002: {}, 11: {}}, nil)

	seatMap, err := svc.SeatMapForShow(context.Background(), 4242)
	require.NoError(t, err)

	require.Len(t, seatMap.Gold, 3)
	require.Len(t, seatMap.Standard, 12)

	// Gold seat 2 and standard seat 11 are booked, everything else free.
	assert.Equal(t, StatusAvailable, seatMap.Gold[0].Status)
	assert.Equal(t, StatusBooked, seatMap.Gold[1].Status)
	assert.Equal(t, StatusAvailable, seatMap.Gold[2].Status)
	assert.Equal(t, StatusBooked, seatMap.Standard[10].Status)

	// Labels and internal ids line up with display order.
	assert.Equal(t, "A2", seatMap.Gold[1].Label)
	assert.Equal(t, 1002, seatMap.Gold[1].InternalNo)
	assert.Equal(t, "B1", seatMap.Standard[10].Label)
	assert.Equal(t, 11, seatMap.Standard[10].InternalNo)

	layouts.AssertExpectations(t)
	booked.AssertExpectations(t)
}

func TestSeatMapForShowZeroCapacity(t *testing.T) {
	layouts := new(mockLayoutProvider)
	booked := new(mockBookedSeatProvider)
	svc := NewService(layouts, booked, nil)

	layouts.On("LayoutForShow", mock.Anything, int64(7)).
		Return(&HallLayout{GoldCapacity: 0, StandardCapacity: 50}, nil)
	booked.On("BookedSeats", mock.Anything, int64(7)).
		Return(map[int]struct{}{}, nil)

	seatMap, err := svc.SeatMapForShow(context.Background(), 7)
	require.NoError(t, err)

	// Zero capacity is an empty section, not an error.
	assert.NotNil(t, seatMap.Gold)
	assert.Empty(t, seatMap.Gold)
	assert.Len(t, seatMap.Standard, 50)
}

func TestSeatMapForShowUnknownShow(t *testing.T) {
	layouts := new(mockLayoutProvider)
	booked := new(mockBookedSeatProvider)
	svc := NewService(layouts, booked, nil)

	layouts.On("LayoutForShow", mock.Anything, int64(999)).
		Return(nil, fault.ErrNotFound)

	seatMap, err := svc.SeatMapForShow(context.Background(), 999)
	assert.Nil(t, seatMap)
	assert.ErrorIs(t, err, fault.ErrNotFound)
	booked.AssertNotCalled(t, "BookedSeats", mock.Anything, mock.Anything)
}
