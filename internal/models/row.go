package models

// Row es una fila devuelta por el almacenamiento, indexada por nombre de columna
type Row map[string]any
