package main

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>T-Shirt Order Management</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 20px auto; padding: 20px; }
        .container { margin-bottom: 20px; }
        .button { padding: 10px 20px; background: #4CAF50; color: white; border: none; border-radius: 4px; cursor: pointer; }
        .input { padding: 8px; margin: 5px; }
        .error { color: red; }
        .success { color: green; }
    </style>
</head>
<body>
    <h1>T-Shirt Order Management</h1>

    <div class="container">
        <h2>Available T-Shirts</h2>
        <button onclick="fetchTshirts()" class="button">Get T-Shirts</button>
        <div id="tshirts"></div>
    </div>

    <div class="container">
        <h2>Create Order</h2>
        <input type="text" id="customerName" placeholder="Customer Name" class="input">
        <input type="number" id="quantity" placeholder="Quantity" class="input">
        <input type="number" id="tshirtId" placeholder="T-Shirt ID" class="input">
        <button onclick="createOrder()" class="button">Create Order</button>
        <div id="orderResult"></div>
    </div>

    <div class="container">
        <h2>Orders History</h2>
        <button onclick="fetchOrders()" class="button">Get Orders</button>
        <div id="orders"></div>
    </div>

    <script>
        async function fetchTshirts() {
            try {
                const response = await fetch('/api/tshirts');
                const tshirts = await response.json();
                if (!Array.isArray(tshirts)) {
                    throw new Error('Invalid data format received');
                }

                const sorted = [...tshirts].sort((a, b) => {
                    if (a.design_name !== b.design_name) {
                        return a.design_name.localeCompare(b.design_name);
                    }
                    const sizeOrder = ['S', 'M', 'L', 'XL', '2XL'];
                    return sizeOrder.indexOf(a.size) - sizeOrder.indexOf(b.size);
                });

                const totals = {};
                sorted.forEach(t => {
                    totals[t.design_name] = (totals[t.design_name] || 0) + t.quantity;
                });

                let html = '';
                let currentDesign = '';
                sorted.forEach(t => {
                    if (t.design_name !== currentDesign) {
                        if (currentDesign !== '') { html += '</div>'; }
                        currentDesign = t.design_name;
                        html += '<div><h3>' + t.design_name + ' (Total: ' + totals[t.design_name] + ')</h3>';
                    }
                    html += '<div style="margin-left: 20px;">Size: ' + t.size +
                        ', Quantity: ' + t.quantity + ', Price: $' + t.price + '</div>';
                });
                html += '</div>';
                document.getElementById('tshirts').innerHTML = html;
            } catch (error) {
                document.getElementById('tshirts').innerHTML = '<div class="error">Error loading t-shirts</div>';
            }
        }

        async function createOrder() {
            const body = {
                customer_name: document.getElementById('customerName').value,
                quantity: parseInt(document.getElementById('quantity').value, 10),
                tshirt_id: parseInt(document.getElementById('tshirtId').value, 10)
            };
            try {
                const response = await fetch('/api/orders', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify(body)
                });
                const data = await response.json();
                if (!response.ok) {
                    throw new Error(data.error || 'request failed');
                }
                document.getElementById('orderResult').innerHTML = '<div class="success">Order created successfully!</div>';
            } catch (error) {
                document.getElementById('orderResult').innerHTML = '<div class="error">Error creating order: ' + error.message + '</div>';
            }
        }

        async function fetchOrders() {
            try {
                const response = await fetch('/api/orders');
                const orders = await response.json();
                document.getElementById('orders').innerHTML = '<h3>Orders:</h3>' +
                    orders.map(order => '<div>Customer: ' + order.customer_name +
                        ', T-Shirt: ' + (order.tshirt ? order.tshirt.size + ' ' + order.tshirt.color : 'removed') +
                        ', Quantity: ' + order.quantity +
                        ', Status: ' + order.status +
                        ', Date: ' + new Date(order.order_date).toLocaleString() + '</div>').join('<br>');
            } catch (error) {
                document.getElementById('orders').innerHTML = '<div class="error">Error loading orders</div>';
            }
        }
    </script>
</body>
</html>
`
