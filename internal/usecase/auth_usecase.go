package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"asistencia-backend/internal/model"
	"asistencia-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrCredencialesInvalidas cubre email desconocido, contraseña incorrecta y cuenta inactiva.
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrCredencialesFaltantes = errors.New("email y contraseña son obligatorios")
	ErrTokenInvalido         = errors.New("token inválido o expirado")
)

// Claims del token de sesión.
type Claims struct {
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	EmpresaID *uint  `json:"empresa_id"`
	jwt.RegisteredClaims
}

// UsuarioID lee el id de la cuenta desde sub.
func (c *Claims) UsuarioID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrTokenInvalido
	}
	return uint(id), nil
}

// Perfil es la vista pública de una cuenta.
type Perfil struct {
	ID             uint   `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	Rol            string `json:"rol"`
	EmpresaID      *uint  `json:"empresa_id"`
}

type Sesion struct {
	Usuario Perfil `json:"user"`
	Token   string `json:"token"`
}

type AuthUsecase struct {
	repo   repository.UsuarioRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthUsecase(repo repository.UsuarioRepository, secret string, ttl time.Duration) *AuthUsecase {
	return &AuthUsecase{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash iguala el costo de un login con email desconocido.
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-es-una-cuenta"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// HashPassword genera el hash bcrypt que se guarda en password_hash.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*Sesion, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrCredencialesFaltantes
	}

	// 1. Buscar la cuenta por email exacto
	usuario, err := u.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	// 2. Comparar contraseña (input vs hash en BD)
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if !usuario.Activo {
		return nil, ErrCredencialesInvalidas
	}

	// 3. Emitir el token
	perfil := perfilDe(usuario)
	token, err := u.generateToken(perfil)
	if err != nil {
		return nil, err
	}
	return &Sesion{Usuario: perfil, Token: token}, nil
}

// Me relee la cuenta; una cuenta borrada o inactiva es ErrNotFound.
func (u *AuthUsecase) Me(ctx context.Context, id uint) (*Perfil, error) {
	usuario, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !usuario.Activo {
		return nil, repository.ErrNotFound
	}
	perfil := perfilDe(usuario)
	return &perfil, nil
}

// ParseToken verifica firma, algoritmo y expiración.
func (u *AuthUsecase) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}
	if _, err := claims.UsuarioID(); err != nil {
		return nil, err
	}
	return claims, nil
}

func (u *AuthUsecase) generateToken(p Perfil) (string, error) {
	now := u.now()
	claims := Claims{
		Email:     p.Email,
		Rol:       p.Rol,
		EmpresaID: p.EmpresaID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(p.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func perfilDe(usuario *model.Usuario) Perfil {
	p := Perfil{
		ID:             usuario.ID,
		NombreCompleto: usuario.NombreCompleto,
		Email:          usuario.Email,
		EmpresaID:      usuario.EmpresaID,
	}
	if usuario.Rol != nil {
		p.Rol = usuario.Rol.Nombre
	}
	return p
}
