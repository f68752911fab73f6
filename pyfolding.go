package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"pyfolding/constants"
)

type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogError
)

func parseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LogDebug
	case "INFO":
		return LogInfo
	default:
		return LogError
	}
}

/*
定数表の出力処理の実行

	Args:
		out: 出力先
		is_table_saved: 定数表を出力するか否か
*/
func run(out io.Writer, is_table_saved bool) error {
	if !is_table_saved {
		return nil
	}
	return constants.WriteCSV(out)
}

func main() {
	var table bool
	flag.BoolVar(&table, "table", false, "定数表をCSVで標準出力に書き出します。")

	var logLevel string
	flag.StringVar(&logLevel, "log", "ERROR", "ログレベルを指定します。 (Default=ERROR)")

	// 引数を受け取る
	flag.Parse()

	level := parseLogLevel(logLevel)
	if level > LogInfo {
		log.SetOutput(io.Discard)
	}

	start := time.Now()
	log.Printf("table: %t", table)
	if level == LogDebug {
		log.Printf("RT: %v kcal/mol", constants.RT)
	}

	if err := run(os.Stdout, table); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
