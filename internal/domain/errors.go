package domain

import "errors"

// Erreurs du domaine.
var (
	ErrLocaleFileAccess   = errors.New("fichier de langue inaccessible")
	ErrInvalidLocaleTag   = errors.New("tag de langue invalide")
	ErrDuplicateLocaleTag = errors.New("tag de langue en double")
	ErrNotNormalized      = errors.New("fichier de langue non normalisé")
	ErrInvalidMessageFile = errors.New("la sortie normalisée n'est pas un fichier de messages valide")
)
