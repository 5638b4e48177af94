package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/arithlang/arith/internal/interpret"
)

func main() {
	if len(os.Args) > 1 {
		result, err := run(strings.Join(os.Args[1:], " "))
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Println(result)
		return
	}

	r := bufio.NewScanner(os.Stdin)
	for r.Scan() {
		line := r.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := run(line)
		if err != nil {
			log.Println(err.Error())
			continue
		}
		fmt.Println(result)
	}
	if err := r.Err(); err != nil {
		log.Fatal(err.Error())
	}
}

func run(expr string) (int64, error) {
	tokens, err := interpret.Scan(strings.NewReader(expr))
	if err != nil {
		return 0, err
	}
	return interpret.Evaluate(tokens)
}
