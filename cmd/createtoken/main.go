package main

import (
	"fmt"
	"os"

	"github.com/gtplusnet/ante-official-sub012/security"
)

func main() {
	secret := os.Getenv("ANTE_SIGNING_SECRET")

	token, err := security.CreateIdentityToken(&security.AnteIdentity{
		Id:       1,
		UserName: "dev",
		Provider: "local",
		Email:    "dev@localhost",
	}, secret, 3600)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
