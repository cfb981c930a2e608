// Package rates mantiene la tasa de cambio USD -> Bs con un caché acotado por
// tiempo. Ante un fallo de red nunca se borra la última tasa conocida: se
// devuelve vencida y marcada (soft-fail), porque una tasa vieja sigue siendo
// mejor que una pantalla en cero.
package rates

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/logger"
)

// DefaultTTL ventana de frescura por defecto del caché.
const DefaultTTL = time.Hour

// Quote tasa entregada al llamador. Stale marca que el último fetch falló y
// el valor viene del caché vencido (o es el cero inicial: "desconocida",
// nunca "gratis").
type Quote struct {
	Rate      decimal.Decimal
	FetchedAt time.Time
	Stale     bool
}

// Cache caché de la tasa con ventana de frescura y fallback a valor vencido.
type Cache struct {
	source repository.RateSource
	ttl    time.Duration
	log    *logger.Logger

	mu        sync.Mutex
	rate      decimal.Decimal
	fetchedAt time.Time
}

// NewCache construye el caché. ttl <= 0 usa DefaultTTL.
func NewCache(source repository.RateSource, ttl time.Duration, log *logger.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{source: source, ttl: ttl, rate: decimal.Zero, log: log}
}

// Rate devuelve la tasa actual. Con caché fresco no toca la red; vencido o
// vacío hace exactamente un fetch. Si el fetch falla devuelve el último valor
// conocido con Stale=true junto con el error del fetch.
func (c *Cache) Rate(ctx context.Context) (Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		return Quote{Rate: c.rate, FetchedAt: c.fetchedAt}, nil
	}
	return c.fetchLocked(ctx)
}

// Refresh invalida el caché y repite el fetch sin esperar el vencimiento.
func (c *Cache) Refresh(ctx context.Context) (Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
	return c.fetchLocked(ctx)
}

func (c *Cache) fetchLocked(ctx context.Context) (Quote, error) {
	rate, err := c.source.FetchRate(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("fetch de tasa falló, usando último valor conocido")
		return Quote{Rate: c.rate, FetchedAt: c.fetchedAt, Stale: true}, err
	}
	c.rate = rate
	c.fetchedAt = time.Now()
	return Quote{Rate: c.rate, FetchedAt: c.fetchedAt}, nil
}

// ConvertToBs convierte un monto USD a Bs con la última tasa conocida
// (cero si nunca se obtuvo una).
func (c *Cache) ConvertToBs(amount decimal.Decimal) decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return amount.Mul(c.rate)
}

// Start lanza el refresco periódico, una vez por ventana de frescura. El
// goroutine se detiene cuando ctx se cancela: el dueño es el proceso, no una
// vista, y el apagado es determinista.
func (c *Cache) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.ttl)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := c.Refresh(ctx); err != nil {
					c.log.Warn().Err(err).Msg("refresco periódico de tasa falló")
				}
			}
		}
	}()
}

var bsPrinter = message.NewPrinter(language.MustParse("es-VE"))

// FormatBs formatea un monto en bolívares con separadores del locale es-VE.
func FormatBs(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return bsPrinter.Sprintf("Bs. %v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
