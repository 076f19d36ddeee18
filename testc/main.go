package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/golang/protobuf/ptypes/empty"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	pb "github.com/usher-2/u2ip4/msg"
)

func ping(c pb.ConverterClient) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r, err := c.Ping(ctx, &empty.Empty{})
	if err != nil {
		log.Fatalf("%v.Ping(_) = _, %v", c, err)
	}

	log.Printf("Ping: %s\n", r.GetValue())
}

func convert(c pb.ConverterClient, ips []string) {
	for _, ip := range ips {
		log.Printf("Converting %q\n", ip)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		r, err := c.Convert(ctx, &wrappers.StringValue{Value: ip})
		cancel()

		if err != nil {
			st, _ := status.FromError(err)
			log.Printf("ERROR: %s: %s\n", st.Code(), st.Message())

			if kind := pb.KindFromStatus(err); kind != "" {
				log.Printf("    kind: %s\n", kind)
			}

			continue
		}

		log.Printf("    %d\n", r.GetValue())
	}
}

func lookup(c pb.ConverterClient, ips []string) {
	for _, ip := range ips {
		log.Printf("Looking for %q\n", ip)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		r, err := c.Lookup(ctx, &wrappers.StringValue{Value: ip})
		cancel()

		if err != nil {
			log.Printf("ERROR: %v\n", err)

			continue
		}

		if len(r.GetValues()) == 0 {
			log.Printf("Nothing... \n")
		}

		for _, v := range r.GetValues() {
			log.Printf("    %s\n", v.GetStringValue())
		}
	}
}

func main() {
	addr := flag.String("a", "localhost:50001", "Server address")
	flag.Parse()

	ips := flag.Args()
	if len(ips) == 0 {
		ips = []string{"172.168.5.1", "172 . 168.5.1", "1 72.168.5.1", "256.0.0.1", "1.2.3", "8.8.8.8"}
	}

	var opts []grpc.DialOption
	opts = append(opts, grpc.WithInsecure())
	opts = append(opts, grpc.WithBlock())

	conn, err := grpc.Dial(*addr, opts...)
	if err != nil {
		log.Fatalf("fail to dial: %v", err)
	}
	defer conn.Close()

	log.Printf("Connect...\n")

	c := pb.NewConverterClient(conn)
	ping(c)
	convert(c, ips)
	lookup(c, ips)
}
