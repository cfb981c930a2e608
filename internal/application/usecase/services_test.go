package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/usecase"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/infrastructure/memory"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/validate"
)

func newResolver() *usecase.ScopeResolver {
	return usecase.NewScopeResolver(newFakeUserRepo(), nil)
}

// ─────────────────────────────────────────────────────────────
// GarmentService: estampado, validación, update/remove con dueño
// ─────────────────────────────────────────────────────────────

func TestGarmentService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("estampa dueño y fecha de creación", func(t *testing.T) {
		store := memory.NewDocumentStore()
		svc := usecase.NewGarmentService(store, newResolver())

		g, err := svc.Save(ctx, "ana", dto.SaveGarmentRequest{
			Name:  "Vestido gala",
			Price: decimal.NewFromInt(120),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, g.ID)
		assert.Equal(t, "ana", g.OwnerID)
		assert.False(t, g.CreatedAt.IsZero())

		// El documento persistido lleva los mismos sellos en las columnas.
		doc, err := store.Get(ctx, repository.CollectionGarments, g.ID)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "ana", doc.OwnerID)
	})

	t.Run("sin llamador no escribe nada", func(t *testing.T) {
		store := memory.NewDocumentStore()
		svc := usecase.NewGarmentService(store, newResolver())

		_, err := svc.Save(ctx, "", dto.SaveGarmentRequest{
			Name:  "Falda",
			Price: decimal.NewFromInt(30),
		})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)

		docs, err := store.ListAll(ctx, repository.CollectionGarments)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("nombre faltante es error de validación", func(t *testing.T) {
		svc := usecase.NewGarmentService(memory.NewDocumentStore(), newResolver())
		_, err := svc.Save(ctx, "ana", dto.SaveGarmentRequest{Price: decimal.NewFromInt(10)})
		var verr *validate.Error
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Missing, "name")
	})

	t.Run("costo negativo se rechaza", func(t *testing.T) {
		svc := usecase.NewGarmentService(memory.NewDocumentStore(), newResolver())
		_, err := svc.Save(ctx, "ana", dto.SaveGarmentRequest{
			Name:      "Blusa",
			Price:     decimal.NewFromInt(20),
			LaborCost: decimal.NewFromInt(-5),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("la respuesta trae la ganancia derivada", func(t *testing.T) {
		svc := usecase.NewGarmentService(memory.NewDocumentStore(), newResolver())
		g, err := svc.Save(ctx, "ana", dto.SaveGarmentRequest{
			Name:          "Pantalón",
			Price:         decimal.NewFromInt(80),
			LaborCost:     decimal.NewFromInt(20),
			TransportCost: decimal.NewFromInt(5),
			Materials: []dto.GarmentMaterialRequest{
				{MaterialName: "tela", Cost: decimal.NewFromInt(18)},
			},
		})
		require.NoError(t, err)
		assert.True(t, g.Profit.Equal(decimal.NewFromInt(37)))
	})
}

func TestGarmentService_Update(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	svc := usecase.NewGarmentService(store, newResolver())

	g, err := svc.Save(ctx, "ana", dto.SaveGarmentRequest{
		Name:  "Vestido",
		Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	t.Run("nunca re-estampa id, dueño ni fecha", func(t *testing.T) {
		err := svc.Update(ctx, "ana", entity.RoleUser, g.ID, map[string]any{
			"name":      "Vestido largo",
			"id":        "otro-id",
			"ownerId":   "intrusa",
			"createdAt": "2000-01-01T00:00:00Z",
		})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, g.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Vestido largo", got.Name)
		assert.Equal(t, g.ID, got.ID)
		assert.Equal(t, "ana", got.OwnerID)
		assert.True(t, got.CreatedAt.Equal(g.CreatedAt))
	})

	t.Run("otro dueño no puede editar", func(t *testing.T) {
		err := svc.Update(ctx, "maria", entity.RoleUser, g.ID, map[string]any{"name": "x"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin edita lo de cualquiera", func(t *testing.T) {
		err := svc.Update(ctx, "jefa", entity.RoleAdmin, g.ID, map[string]any{"size": "M"})
		assert.NoError(t, err)
	})

	t.Run("registro inexistente", func(t *testing.T) {
		err := svc.Update(ctx, "ana", entity.RoleUser, "no-existe", map[string]any{"name": "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGarmentService_Remove(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	svc := usecase.NewGarmentService(store, newResolver())

	g, err := svc.Save(ctx, "ana", dto.SaveGarmentRequest{
		Name:  "Chaqueta",
		Price: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	t.Run("otro dueño no puede borrar", func(t *testing.T) {
		err := svc.Remove(ctx, "maria", entity.RoleUser, g.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("el dueño borra y el doble borrado es inocuo", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, "ana", entity.RoleUser, g.ID))
		assert.NoError(t, svc.Remove(ctx, "ana", entity.RoleUser, g.ID))

		got, err := svc.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestGarmentService_List(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	svc := usecase.NewGarmentService(store, newResolver())

	for _, owner := range []string{"ana", "ana", "maria"} {
		_, err := svc.Save(ctx, owner, dto.SaveGarmentRequest{
			Name:  "Prenda de " + owner,
			Price: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	propias, err := svc.List(ctx, "ana", entity.RoleUser)
	require.NoError(t, err)
	assert.Len(t, propias, 2)

	todas, err := svc.List(ctx, "jefa", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, todas, 3)

	nada, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, nada)
}

// ─────────────────────────────────────────────────────────────
// OrderService: snapshot de prenda, estados
// ─────────────────────────────────────────────────────────────

func TestOrderService_Save(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	resolver := newResolver()
	garments := usecase.NewGarmentService(store, resolver)
	orders := usecase.NewOrderService(store, resolver)

	g, err := garments.Save(ctx, "ana", dto.SaveGarmentRequest{
		Name:  "Vestido fiesta",
		Size:  "S",
		Price: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	t.Run("completa nombre y precio desde la prenda referenciada", func(t *testing.T) {
		o, err := orders.Save(ctx, "ana", dto.SaveOrderRequest{
			ClientName: "Carla",
			GarmentID:  g.ID,
			PaidAmount: decimal.NewFromInt(50),
		})
		require.NoError(t, err)
		assert.Equal(t, "Vestido fiesta", o.GarmentName)
		assert.True(t, o.Price.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, "S", o.Size)
		assert.Equal(t, entity.StatusPendiente, o.Status, "estado por defecto")
		assert.True(t, o.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("el snapshot no sigue a la prenda", func(t *testing.T) {
		o, err := orders.Save(ctx, "ana", dto.SaveOrderRequest{
			ClientName: "Carla",
			GarmentID:  g.ID,
		})
		require.NoError(t, err)

		require.NoError(t, garments.Update(ctx, "ana", entity.RoleUser, g.ID, map[string]any{"name": "Renombrada"}))

		got, err := orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "Vestido fiesta", got.GarmentName, "editar la prenda no toca el pedido")
	})

	t.Run("estado fuera del enum se rechaza", func(t *testing.T) {
		_, err := orders.Save(ctx, "ana", dto.SaveOrderRequest{
			ClientName:  "Carla",
			GarmentName: "Falda",
			Status:      "Cancelado",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("clientName es obligatorio", func(t *testing.T) {
		_, err := orders.Save(ctx, "ana", dto.SaveOrderRequest{GarmentName: "Falda"})
		var verr *validate.Error
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Missing, "clientName")
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	orders := usecase.NewOrderService(store, newResolver())

	o, err := orders.Save(ctx, "ana", dto.SaveOrderRequest{
		ClientName:  "Carla",
		GarmentName: "Vestido",
		Price:       decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	t.Run("cambio de estado válido", func(t *testing.T) {
		err := orders.Update(ctx, "ana", entity.RoleUser, o.ID, map[string]any{"status": entity.StatusEnProceso})
		require.NoError(t, err)

		got, err := orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusEnProceso, got.Status)
	})

	t.Run("estado inválido se rechaza antes de tocar el almacén", func(t *testing.T) {
		err := orders.Update(ctx, "ana", entity.RoleUser, o.ID, map[string]any{"status": "Perdido"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// ─────────────────────────────────────────────────────────────
// StockService
// ─────────────────────────────────────────────────────────────

func TestStockService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	resolver := newResolver()
	garments := usecase.NewGarmentService(store, resolver)
	stock := usecase.NewStockService(store, resolver)

	g, err := garments.Save(ctx, "ana", dto.SaveGarmentRequest{
		Name:  "Camisa",
		Size:  "M",
		Price: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	t.Run("desnormaliza el nombre de la prenda", func(t *testing.T) {
		item, err := stock.Save(ctx, "ana", dto.SaveStockItemRequest{
			GarmentID: g.ID,
			Quantity:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, "Camisa", item.GarmentName)
		assert.Equal(t, "M", item.Size)
	})

	t.Run("cantidad negativa se rechaza", func(t *testing.T) {
		_, err := stock.Save(ctx, "ana", dto.SaveStockItemRequest{
			GarmentName: "Camisa",
			Quantity:    -1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("update con cantidad negativa se rechaza", func(t *testing.T) {
		item, err := stock.Save(ctx, "ana", dto.SaveStockItemRequest{GarmentName: "Camisa", Quantity: 2})
		require.NoError(t, err)
		err = stock.Update(ctx, "ana", entity.RoleUser, item.ID, map[string]any{"quantity": float64(-2)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// ─────────────────────────────────────────────────────────────
// Dashboard
// ─────────────────────────────────────────────────────────────

func TestDashboardUseCase_Summary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	resolver := newResolver()
	garments := usecase.NewGarmentService(store, resolver)
	clients := usecase.NewClientService(store, resolver)
	orders := usecase.NewOrderService(store, resolver)
	stock := usecase.NewStockService(store, resolver)
	dashboard := usecase.NewDashboardUseCase(store, resolver)

	_, err := garments.Save(ctx, "ana", dto.SaveGarmentRequest{Name: "Vestido", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	_, err = clients.Save(ctx, "ana", dto.SaveClientRequest{Name: "Carla"})
	require.NoError(t, err)

	// Pedido con saldo 60, pedido pagado, y un sobrepago que debe truncarse.
	for _, o := range []dto.SaveOrderRequest{
		{ClientName: "Carla", GarmentName: "Vestido", Price: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(40)},
		{ClientName: "Carla", GarmentName: "Falda", Price: decimal.NewFromInt(50), PaidAmount: decimal.NewFromInt(50), Status: entity.StatusEntregado},
		{ClientName: "Rosa", GarmentName: "Blusa", Price: decimal.NewFromInt(20), PaidAmount: decimal.NewFromInt(30)},
	} {
		_, err := orders.Save(ctx, "ana", o)
		require.NoError(t, err)
	}
	_, err = stock.Save(ctx, "ana", dto.SaveStockItemRequest{GarmentName: "Vestido", Quantity: 4})
	require.NoError(t, err)
	_, err = stock.Save(ctx, "ana", dto.SaveStockItemRequest{GarmentName: "Falda", Quantity: 2})
	require.NoError(t, err)

	// Registros de otra dueña que no deben contarse.
	_, err = orders.Save(ctx, "maria", dto.SaveOrderRequest{
		ClientName: "X", GarmentName: "Y", Price: decimal.NewFromInt(999),
	})
	require.NoError(t, err)

	sum, err := dashboard.Summary(ctx, "ana", entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Garments)
	assert.Equal(t, 1, sum.Clients)
	assert.Equal(t, 2, sum.OrdersByStatus[entity.StatusPendiente])
	assert.Equal(t, 1, sum.OrdersByStatus[entity.StatusEntregado])
	assert.True(t, sum.PendingBalance.Equal(decimal.NewFromInt(60)), "el sobrepago no resta: %s", sum.PendingBalance)
	assert.Equal(t, 6, sum.StockUnits)

	todo, err := dashboard.Summary(ctx, "jefa", entity.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, todo.PendingBalance.Equal(decimal.NewFromInt(1059)), "admin agrega sobre todos los dueños")
}
