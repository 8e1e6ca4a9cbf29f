package domain

// TempFileSet is the ordered registry of ephemeral file paths created
// while processing one request. Paths are added as soon as their
// creation is requested so that partially written files are still
// cleaned up.
type TempFileSet struct {
	paths []string
}

func NewTempFileSet() *TempFileSet {
	return &TempFileSet{
		paths: make([]string, 0),
	}
}

func (t *TempFileSet) Add(path string) {
	t.paths = append(t.paths, path)
}

func (t *TempFileSet) Paths() []string {
	return t.paths
}

func (t *TempFileSet) Len() int {
	return len(t.paths)
}
