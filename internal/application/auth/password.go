package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost coste bcrypt de las contraseñas nuevas.
const PasswordCost = bcrypt.DefaultCost

// HashPassword devuelve el hash bcrypt de password. Si password ya es un hash bcrypt
// se devuelve tal cual, de modo que volver a guardar un usuario no lo re-hashea.
func HashPassword(password string) (string, error) {
	if IsHashed(password) {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IsHashed indica si s tiene formato de hash bcrypt.
func IsHashed(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}

// CheckPassword compara una contraseña en texto plano con su hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
