package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
)

func TestOrder_Balance(t *testing.T) {
	o := entity.Order{Price: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(40)}
	assert.True(t, o.Balance().Equal(decimal.NewFromInt(60)), "100 - 40 = 60")

	pagado := entity.Order{Price: decimal.NewFromInt(50), PaidAmount: decimal.NewFromInt(50)}
	assert.True(t, pagado.Balance().IsZero(), "pedido pagado completo queda en cero")
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{entity.StatusPendiente, entity.StatusEnProceso, entity.StatusFinalizado, entity.StatusEntregado} {
		assert.True(t, entity.ValidOrderStatus(s), s)
	}
	assert.False(t, entity.ValidOrderStatus("Cancelado"), "estado fuera del enum cerrado")
	assert.False(t, entity.ValidOrderStatus(""))
}

func TestGarment_Profit(t *testing.T) {
	g := entity.Garment{
		Price:         decimal.NewFromInt(80),
		LaborCost:     decimal.NewFromInt(20),
		TransportCost: decimal.NewFromInt(5),
		Materials: []entity.GarmentMaterial{
			{MaterialName: "tela", Cost: decimal.NewFromInt(15), QuantityLabel: "2 m"},
			{MaterialName: "cierre", Cost: decimal.NewFromInt(3), QuantityLabel: "1"},
		},
	}
	assert.True(t, g.MaterialsCost().Equal(decimal.NewFromInt(18)))
	assert.True(t, g.Profit().Equal(decimal.NewFromInt(37)), "80 - (20+5+18) = 37")
}
