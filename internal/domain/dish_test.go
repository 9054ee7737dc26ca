package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/testutil"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

func Test_dishDomain_CRUD(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := NewDishDomain(repository.NewDishRepository())

	created, err := domain.Create(ctx, &model.CreateDishRequest{
		Name:     "Oatmeal",
		Calories: 389,
		Carbs:    66,
		Fat:      7,
		Protein:  17,
	})
	require.NoError(t, err)
	require.Equal(t, "Oatmeal", created.Dish.Name)

	newName := "Oatmeal with honey"
	calories := 450.0
	updated, err := domain.Update(ctx, &model.UpdateDishRequest{
		ID: created.Dish.ID, Name: &newName, Calories: &calories,
	})
	require.NoError(t, err)
	require.Equal(t, "Oatmeal with honey", updated.Dish.Name)
	require.Equal(t, 450.0, updated.Dish.Calories)
	require.Equal(t, 17.0, updated.Dish.Protein)

	found, err := domain.Search(ctx, &model.SearchDishesRequest{Query: "honey"})
	require.NoError(t, err)
	require.Len(t, found.Dishes, 1)

	_, err = domain.Delete(ctx, &model.DeleteDishRequest{ID: created.Dish.ID})
	require.NoError(t, err)

	all, err := domain.GetAll(ctx, &model.GetDishesRequest{})
	require.NoError(t, err)
	require.Empty(t, all.Dishes)
}

func Test_dishDomain_Ownership(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewDishDomain(repository.NewDishRepository())

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	created, err := domain.Create(ctx1, &model.CreateDishRequest{Name: "Steak"})
	require.NoError(t, err)

	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = domain.Get(ctx2, &model.GetDishRequest{ID: created.Dish.ID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	all, err := domain.GetAll(ctx2, &model.GetDishesRequest{})
	require.NoError(t, err)
	require.Empty(t, all.Dishes)

	_, err = domain.Get(ctx1, &model.GetDishRequest{ID: "no-such-id"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found dish"), err)
}
