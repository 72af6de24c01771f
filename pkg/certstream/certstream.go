package certstream

import (
	"bitcat/config"
	"context"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// the websocket stream from calidog
const certInput = "wss://certstream.calidog.io"

// StartLoopCertStream gathers messages from CertStream and feeds the
// workers
func StartLoopCertStream(cfg *config.Configuration) {
	dial := ws.Dialer{
		ReadBufferSize:  8192,
		WriteBufferSize: 512,
		Timeout:         1 * time.Second,
	}
	for {
		conn, _, _, err := dial.Dial(context.Background(), certInput)
		if err != nil {
			cfg.Log.Warn(err)
			cfg.Log.Warn("Error connecting to CertStream! Sleeping a few seconds and reconnecting...")
			time.Sleep(1 * time.Second)
			continue
		}
		for {
			msg, _, err := wsutil.ReadServerData(conn)
			if err != nil {
				cfg.Log.Warn("Error reading message from CertStream")
				break
			}
			cfg.Messages <- msg
		}
		conn.Close()
	}
}
