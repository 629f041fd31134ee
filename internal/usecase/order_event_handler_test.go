package usecase

import (
	"context"
	"errors"
	"mollie_checkout/internal/domain/entities"
	mock_interfaces "mollie_checkout/internal/usecase/interfaces/mocks"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestOrderEventHandler_HandleOrderStatusChange(t *testing.T) {
	pipeline := map[string][]string{
		"Pending":         {"Being processed", "Cancelled"},
		"Being processed": {"Complete", "Cancelled"},
	}

	t.Run("allowed transition appends note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewOrderEventHandler(repo, pipeline, zap.NewNop())

		repo.EXPECT().UpdateStatus(gomock.Any(), "100023", "Being processed", gomock.Any()).DoAndReturn(
			func(_ context.Context, number, status string, note entities.OrderNote) (entities.Order, error) {
				if note.Type != entities.OrderNoteTypeSystem || note.Message != "Mollie payment update" {
					t.Fatalf("unexpected note: %+v", note)
				}
				return entities.Order{Number: number, Status: status, Notes: []entities.OrderNote{note}}, nil
			},
		)

		order := &entities.Order{Number: "100023", Status: "Pending"}
		if err := h.HandleOrderStatusChange(context.Background(), order, "Being processed", "Mollie payment update"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != "Being processed" || len(order.Notes) != 1 {
			t.Fatalf("order not refreshed: %+v", order)
		}
	})

	t.Run("same status is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewOrderEventHandler(repo, pipeline, zap.NewNop())

		repo.EXPECT().UpdateStatus(gomock.Any(), "100023", "Pending", gomock.Any()).
			Return(entities.Order{Number: "100023", Status: "Pending"}, nil)

		order := &entities.Order{Number: "100023", Status: "Pending"}
		if err := h.HandleOrderStatusChange(context.Background(), order, "Pending", "note"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status outside the pipeline is unrestricted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewOrderEventHandler(repo, pipeline, zap.NewNop())

		repo.EXPECT().UpdateStatus(gomock.Any(), "100023", "Pending", gomock.Any()).
			Return(entities.Order{Number: "100023", Status: "Pending"}, nil)

		order := &entities.Order{Number: "100023", Status: "Draft"}
		if err := h.HandleOrderStatusChange(context.Background(), order, "Pending", "note"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("disallowed transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewOrderEventHandler(repo, pipeline, zap.NewNop())

		order := &entities.Order{Number: "100023", Status: "Being processed"}
		err := h.HandleOrderStatusChange(context.Background(), order, "Pending", "note")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
		if order.Status != "Being processed" {
			t.Fatalf("order must not change: %+v", order)
		}
	})

	t.Run("empty pipeline allows anything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewOrderEventHandler(repo, nil, zap.NewNop())

		repo.EXPECT().UpdateStatus(gomock.Any(), "100023", "Pending", gomock.Any()).
			Return(entities.Order{Number: "100023", Status: "Pending"}, nil)

		order := &entities.Order{Number: "100023", Status: "Complete"}
		if err := h.HandleOrderStatusChange(context.Background(), order, "Pending", "note"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewOrderEventHandler(repo, nil, zap.NewNop())

		repo.EXPECT().UpdateStatus(gomock.Any(), "100023", "Pending", gomock.Any()).Return(entities.Order{}, nil)

		order := &entities.Order{Number: "100023", Status: "Open"}
		err := h.HandleOrderStatusChange(context.Background(), order, "Pending", "note")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewOrderEventHandler(repo, nil, zap.NewNop())

		repo.EXPECT().UpdateStatus(gomock.Any(), "100023", "Pending", gomock.Any()).Return(entities.Order{}, errors.New("throttled"))

		order := &entities.Order{Number: "100023", Status: "Open"}
		if err := h.HandleOrderStatusChange(context.Background(), order, "Pending", "note"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
