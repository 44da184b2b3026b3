// Package chaos implementa la política de inyección de latencia y errores simulados
// que usan los casos de uso para ejercitar herramientas de monitoreo.
//
// Los casos de uso nunca llaman a math/rand directamente: reciben una Policy.
// En producción se usa Random; en tests, Off.
package chaos

import (
	"context"
	"math/rand/v2"
	"time"
)

// Range intervalo [Min, Max] para una demora uniforme.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Rangos usados por la API demo.
var (
	RequestLatency = Range{Min: 100 * time.Millisecond, Max: 800 * time.Millisecond}
	PaymentLatency = Range{Min: 500 * time.Millisecond, Max: 2 * time.Second}
	SlowEndpoint   = Range{Min: 2 * time.Second, Max: 5 * time.Second}
)

// Policy decide demoras artificiales y fallas simuladas.
type Policy interface {
	// Delay bloquea una duración dentro de r y devuelve la duración aplicada.
	// Retorna ctx.Err() si el contexto se cancela antes.
	Delay(ctx context.Context, r Range) (time.Duration, error)
	// Trip decide si el request actual sufre una falla simulada.
	Trip() bool
}

// Config opciones de Random.
type Config struct {
	LatencyEnabled bool
	ErrorsEnabled  bool
	// ErrorRate probabilidad de falla por request en [0,1]. 0 no dispara nunca.
	ErrorRate float64
}

// Random política basada en math/rand/v2.
type Random struct {
	cfg   Config
	float func() float64
	sleep func(ctx context.Context, d time.Duration) error
}

var _ Policy = (*Random)(nil)

// NewRandom construye la política de producción.
func NewRandom(cfg Config) *Random {
	return &Random{cfg: cfg, float: rand.Float64, sleep: sleepContext}
}

// Delay aplica una demora uniforme en r si la latencia está habilitada.
func (p *Random) Delay(ctx context.Context, r Range) (time.Duration, error) {
	if !p.cfg.LatencyEnabled {
		return 0, nil
	}
	d := r.pick(p.float())
	if err := p.sleep(ctx, d); err != nil {
		return 0, err
	}
	return d, nil
}

// Trip devuelve true con probabilidad cfg.ErrorRate si los errores están habilitados.
func (p *Random) Trip() bool {
	if !p.cfg.ErrorsEnabled {
		return false
	}
	return p.float() < p.cfg.ErrorRate
}

// pick mapea u ∈ [0,1) al intervalo.
func (r Range) pick(u float64) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(u*float64(r.Max-r.Min))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Off política que no demora ni falla nunca.
type Off struct{}

var _ Policy = Off{}

// Delay no bloquea.
func (Off) Delay(ctx context.Context, _ Range) (time.Duration, error) { return 0, ctx.Err() }

// Trip siempre false.
func (Off) Trip() bool { return false }

// Always política determinista que siempre dispara la falla simulada. Útil en tests.
type Always struct{}

var _ Policy = Always{}

// Delay no bloquea.
func (Always) Delay(ctx context.Context, _ Range) (time.Duration, error) { return 0, ctx.Err() }

// Trip siempre true.
func (Always) Trip() bool { return true }
