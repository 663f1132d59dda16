package ports

// Mailer puerto del notificador de email. Los envíos son fire-and-forget
// desde la perspectiva del dominio: un fallo no se reintenta ni se propaga
// al caller, a lo sumo se registra en el log del adaptador.
type Mailer interface {
	SendConfirmationCode(name, email, code string) error
	SendPasswordChanged(name, email string) error
}
