package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var postalCodes = []string{"C1043", "1900", "5000", "2000", "1406"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	if rand.Intn(10) == 0 {
		get(baseURL + "/balance/monthly")
		return
	}

	// Повторяющиеся корзины попадают в кэш тарифов
	body := fmt.Sprintf(`{
		"items": [{"productId":"pollo-5","name":"BARF Pollo","price":18500,"quantity":%d,"weight":5000}],
		"destination": {"name":"Cliente","street":"Calle Falsa","number":"123","city":"Ciudad","country":"AR","postalCode":%q}
	}`, rand.Intn(3)+1, postalCodes[rand.Intn(len(postalCodes))])

	resp, err := http.Post(baseURL+"/shipping/rates", "application/json", bytes.NewBufferString(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST /shipping/rates ->", resp.Status)
	resp.Body.Close()
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
