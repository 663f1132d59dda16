package ports

import "context"

// PaymentGateway autoriza un pago por método y monto. La pasarela solo acepta
// un monto en punto flotante: la conversión desde decimal ocurre de forma
// explícita en la frontera, nunca antes del cálculo del total.
// No expone transaction id ni captura parcial.
type PaymentGateway interface {
	Authorize(ctx context.Context, method string, amount float64) (bool, error)
}
