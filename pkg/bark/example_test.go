package bark_test

import (
	"context"
	"fmt"

	"barkgo/pkg/bark"
)

func ExampleClient_Send() {
	client, err := bark.New("YOUR_DEVICE_KEY")
	if err != nil {
		fmt.Println("setup:", err)
		return
	}

	resp, err := client.Send(context.Background(), bark.Notification{
		Title: "Deploy finished",
		Body:  "api-server v1.4.2 is live",
		Group: "deploys",
		Level: bark.LevelTimeSensitive,
	})
	if err != nil {
		fmt.Println("send:", err)
		return
	}
	fmt.Println(resp.Message())
}

func ExampleClient_SendPost() {
	client, err := bark.New("YOUR_DEVICE_KEY", bark.WithServerURL("https://bark.example.com"))
	if err != nil {
		fmt.Println("setup:", err)
		return
	}

	_, err = client.SendPost(context.Background(), bark.Notification{
		Body:      "disk usage above 90%",
		Sound:     "alarm",
		Call:      bark.Bool(true),
		IsArchive: bark.Bool(false),
	})
	if err != nil {
		fmt.Println("send:", err)
	}
}
