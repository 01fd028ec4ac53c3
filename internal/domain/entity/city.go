package entity

// City agrupa bancos de sangre para alcance de notificaciones y agregación.
type City struct {
	ID    string
	Name  string
	State string
}
