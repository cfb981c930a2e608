package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
)

// DashboardUseCase agrega los números del tablero de inicio a partir de las
// colecciones visibles para el llamador.
type DashboardUseCase struct {
	garments collection[entity.Garment]
	clients  collection[entity.Client]
	orders   collection[entity.Order]
	stock    collection[entity.StockItem]
	scopes   *ScopeResolver
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.DocumentStore, scopes *ScopeResolver) *DashboardUseCase {
	return &DashboardUseCase{
		garments: newCollection[entity.Garment](store, repository.CollectionGarments),
		clients:  newCollection[entity.Client](store, repository.CollectionClients),
		orders:   newCollection[entity.Order](store, repository.CollectionOrders),
		stock:    newCollection[entity.StockItem](store, repository.CollectionStock),
		scopes:   scopes,
	}
}

// Summary calcula los totales. El saldo pendiente se trunca en cero por
// pedido: un sobrepago (error de datos) jamás resta del agregado.
func (uc *DashboardUseCase) Summary(ctx context.Context, callerID, role string) (*dto.DashboardSummary, error) {
	sc := uc.scopes.Resolve(ctx, callerID, role)

	garments, err := uc.garments.list(ctx, sc)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.list(ctx, sc)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.list(ctx, sc)
	if err != nil {
		return nil, err
	}
	stock, err := uc.stock.list(ctx, sc)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int)
	pending := decimal.Zero
	for _, o := range orders {
		byStatus[o.Status]++
		if balance := o.Balance(); balance.IsPositive() {
			pending = pending.Add(balance)
		}
	}
	units := 0
	for _, item := range stock {
		units += item.Quantity
	}

	return &dto.DashboardSummary{
		Garments:       len(garments),
		Clients:        len(clients),
		OrdersByStatus: byStatus,
		PendingBalance: pending,
		StockUnits:     units,
	}, nil
}
