package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

func TestAssign_RejectsNonDeliveryMan(t *testing.T) {
	tm := newMockTxManager()
	uc := NewDeliveryUsecase(tm)

	tm.repos.users.On("FindByID", mock.Anything, int64(9)).Return(model.User{ID: 9, Role: model.RoleCustomer}, nil)

	_, err := uc.Assign(context.Background(), AssignInput{DeliveryManID: 9, OrderID: 500})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Status)
	assert.Equal(t, "User is not a delivery man", he.Message)
}

func TestAssign_OrderNotFound(t *testing.T) {
	tm := newMockTxManager()
	uc := NewDeliveryUsecase(tm)

	tm.repos.users.On("FindByID", mock.Anything, int64(9)).Return(model.User{ID: 9, Role: model.RoleDeliveryBoy}, nil)
	tm.repos.orders.On("FindByID", mock.Anything, int64(500)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.Assign(context.Background(), AssignInput{DeliveryManID: 9, OrderID: 500})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Order not found", he.Message)
}

func TestAssign_FirstAssignmentAdvancesOrderStatus(t *testing.T) {
	tm := newMockTxManager()
	uc := NewDeliveryUsecase(tm)

	tm.repos.users.On("FindByID", mock.Anything, int64(9)).Return(model.User{ID: 9, Role: model.RoleDeliveryBoy}, nil)
	tm.repos.orders.On("FindByID", mock.Anything, int64(500)).Return(model.Order{ID: 500}, nil)
	tm.repos.assignments.On("FindAssignedByOrderID", mock.Anything, int64(500), (*int64)(nil)).Return(model.AssignDeliveryMan{}, repo.ErrNotFound)
	tm.repos.assignments.On("Create", mock.Anything, mock.MatchedBy(func(a *model.AssignDeliveryMan) bool {
		return a.DeliveryManID == 9 && a.OrderID == 500 && a.Status == model.AssignmentStatusAssigned
	})).Return(nil)
	tm.repos.orders.On("UpdateStatus", mock.Anything, int64(500), model.OrderStatusAssignedDeliveryer).Return(nil)

	out, err := uc.Assign(context.Background(), AssignInput{DeliveryManID: 9, OrderID: 500})

	assert.NoError(t, err)
	assert.Equal(t, model.AssignmentStatusAssigned, out.Status)
	tm.repos.orders.AssertExpectations(t)
	tm.repos.assignments.AssertExpectations(t)
}

func TestAssign_SameDeliveryManIsIdempotent(t *testing.T) {
	tm := newMockTxManager()
	uc := NewDeliveryUsecase(tm)

	existing := model.AssignDeliveryMan{ID: 40, DeliveryManID: 9, OrderID: 500, Status: model.AssignmentStatusAssigned}

	tm.repos.users.On("FindByID", mock.Anything, int64(9)).Return(model.User{ID: 9, Role: model.RoleDeliveryBoy}, nil)
	tm.repos.orders.On("FindByID", mock.Anything, int64(500)).Return(model.Order{ID: 500}, nil)
	tm.repos.assignments.On("FindAssignedByOrderID", mock.Anything, int64(500), (*int64)(nil)).Return(existing, nil)

	out, err := uc.Assign(context.Background(), AssignInput{DeliveryManID: 9, OrderID: 500})

	assert.NoError(t, err)
	assert.Equal(t, int64(40), out.ID)
	//2行目を作らない、上書きもしない
	tm.repos.assignments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tm.repos.assignments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	tm.repos.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssign_DifferentDeliveryManOverwritesRow(t *testing.T) {
	tm := newMockTxManager()
	uc := NewDeliveryUsecase(tm)

	existing := model.AssignDeliveryMan{ID: 40, DeliveryManID: 8, OrderID: 500, Status: model.AssignmentStatusAssigned}

	tm.repos.users.On("FindByID", mock.Anything, int64(9)).Return(model.User{ID: 9, Role: model.RoleDeliveryBoy}, nil)
	tm.repos.orders.On("FindByID", mock.Anything, int64(500)).Return(model.Order{ID: 500}, nil)
	tm.repos.assignments.On("FindAssignedByOrderID", mock.Anything, int64(500), (*int64)(nil)).Return(existing, nil)
	tm.repos.assignments.On("Update", mock.Anything, mock.MatchedBy(func(a *model.AssignDeliveryMan) bool {
		return a.ID == 40 && a.DeliveryManID == 9
	})).Return(nil)

	out, err := uc.Assign(context.Background(), AssignInput{DeliveryManID: 9, OrderID: 500})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.DeliveryManID)
	tm.repos.assignments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnassign_NotFound(t *testing.T) {
	tm := newMockTxManager()
	uc := NewDeliveryUsecase(tm)

	tm.repos.assignments.On("FindAssignedByOrderID", mock.Anything, int64(500), (*int64)(nil)).Return(model.AssignDeliveryMan{}, repo.ErrNotFound)

	_, err := uc.Unassign(context.Background(), UnassignInput{OrderID: 500})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Assigned delivery man not found for this order", he.Message)
}

func TestUnassign_FlipsStatus(t *testing.T) {
	tm := newMockTxManager()
	uc := NewDeliveryUsecase(tm)

	dmID := int64(9)
	existing := model.AssignDeliveryMan{ID: 40, DeliveryManID: 9, OrderID: 500, Status: model.AssignmentStatusAssigned}

	tm.repos.assignments.On("FindAssignedByOrderID", mock.Anything, int64(500), &dmID).Return(existing, nil)
	tm.repos.assignments.On("Update", mock.Anything, mock.MatchedBy(func(a *model.AssignDeliveryMan) bool {
		return a.ID == 40 && a.Status == model.AssignmentStatusUnassigned
	})).Return(nil)

	out, err := uc.Unassign(context.Background(), UnassignInput{OrderID: 500, DeliveryManID: &dmID})

	assert.NoError(t, err)
	assert.Equal(t, model.AssignmentStatusUnassigned, out.Status)
	tm.repos.assignments.AssertExpectations(t)
}
