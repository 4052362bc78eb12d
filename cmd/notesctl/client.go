package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

func apiClient() *resty.Client {
	return resty.New().
		SetBaseURL(apiFlag).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")
}

// checkStatus turns non-2xx responses into errors carrying the body.
func checkStatus(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}
