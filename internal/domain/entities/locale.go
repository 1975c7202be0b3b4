package entities

// LocaleResult décrit ce qu'une exécution a fait d'un fichier de langue.
type LocaleResult struct {
	Tag     string
	Path    string
	Entries int
	Changed bool
}
