package utils

import (
	"log"
	"os"
	"path"
	"time"
)

func GetBinPath() string {
	e, err := os.Executable()
	if err != nil {
		log.Fatalln("failed to get path of projetos binary", err.Error())
	}
	return path.Dir(e)
}

// FormatTime is the storage format for every timestamp column.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
