package commands_test

import (
	"errors"
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateMenuCommand(t *testing.T, groupID kernel.UUID, productIDs ...kernel.UUID) commands.CreateMenuCommand {
	t.Helper()
	inputs := make([]commands.MenuProductInput, 0, len(productIDs))
	for _, id := range productIDs {
		inputs = append(inputs, commands.MenuProductInput{ProductID: id, Quantity: ptr(int64(1))})
	}
	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "set", ptr(decimal.NewFromInt(30000)), groupID, inputs)
	require.NoError(t, err)
	return cmd
}

func TestCreateMenuCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	first := newTestProduct(t)
	second := newTestProduct(t)
	group := newTestMenuGroup(t)
	cmd := newCreateMenuCommand(t, group.ID(), first.ID(), second.ID())

	productRepo := new(MockProductRepository)
	groupRepo := new(MockMenuGroupRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		productRepo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Add", ctx, mock.AnythingOfType("*menu.Menu")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	m, err := commands.NewCreateMenuCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, m.ID().IsEqual(cmd.MenuID()))
	require.Len(t, m.Products(), 2)
	assert.True(t, m.Products()[0].ProductID().IsEqual(first.ID()))
	assert.True(t, m.Products()[1].ProductID().IsEqual(second.ID()))
	productRepo.AssertExpectations(t)
	groupRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	known := newTestProduct(t)
	missing := kernel.NewUUID()
	cmd := newCreateMenuCommand(t, kernel.NewUUID(), known.ID(), missing)

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, known.ID()).Return(known, nil).Once(),
		productRepo.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("product", missing.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	m, err := commands.NewCreateMenuCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductNotFound)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, m)
	menuRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_MenuGroupNotFound(t *testing.T) {
	ctx := t.Context()
	p := newTestProduct(t)
	groupID := kernel.NewUUID()
	cmd := newCreateMenuCommand(t, groupID, p.ID())

	productRepo := new(MockProductRepository)
	groupRepo := new(MockMenuGroupRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, groupID).Return(nil, errs.NewObjectNotFoundError("menu group", groupID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateMenuCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMenuGroupNotFound)
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_RepositoryFailureIsNotReference(t *testing.T) {
	ctx := t.Context()
	p := newTestProduct(t)
	cmd := newCreateMenuCommand(t, kernel.NewUUID(), p.ID())

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, p.ID()).Return(nil, errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateMenuCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	assert.NotErrorIs(t, err, commands.ErrProductNotFound)
}

func TestCreateMenuCommandHandler_Handle_AddFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	group := newTestMenuGroup(t)
	cmd := newCreateMenuCommand(t, group.ID())

	groupRepo := new(MockMenuGroupRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(new(MockProductRepository)).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Add", ctx, mock.AnythingOfType("*menu.Menu")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateMenuCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockMenuUoWFactory)

	_, err := commands.NewCreateMenuCommandHandler(factory).Handle(t.Context(), commands.CreateMenuCommand{})

	require.ErrorIs(t, err, commands.ErrCreateMenuCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
