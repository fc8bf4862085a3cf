package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Antes de SetupLogger os loggers escrevem apenas no console, assim
// pacotes que logam durante a inicialização não quebram.
var (
	InfoLogger    = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger   = log.New(os.Stdout, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

// SetupLogger inicializa os loggers, escrevendo no console e em um
// arquivo diário dentro de logs/.
func SetupLogger() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("falha ao criar diretório de logs: %v", err)
	}

	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("falha ao abrir arquivo de log: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	InfoLogger = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(multiWriter, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// Info registra uma mensagem de nível informativo.
func Info(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// Warning registra uma mensagem de alerta.
func Warning(format string, v ...interface{}) {
	WarningLogger.Printf(format, v...)
}

// Error registra uma mensagem de erro.
func Error(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
