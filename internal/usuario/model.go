package usuario

import "time"

// Usuario é uma conta administrativa ou de equipe. A senha nunca é
// serializada nas respostas.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Senha     string    `gorm:"not null" json:"-"`
	Nome      string    `gorm:"size:255" json:"nome"`
	Email     string    `gorm:"size:255" json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Atualizacao é o patch parcial do update de usuário; uma senha em
// texto puro é re-hasheada, um hash já pronto é mantido como está.
type Atualizacao struct {
	Username *string `json:"username"`
	Senha    *string `json:"senha"`
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	IsAdmin  *bool   `json:"isAdmin"`
}
