package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterStatic wires a tiny inline HTML console at GET "/".
func RegisterStatic(r *gin.Engine) {
	const page = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>videoapi</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Cantarell,Noto Sans,sans-serif;margin:0;padding:2rem;background:#0b0b0c;color:#e8e8ea}
.container{max-width:720px;margin:0 auto}
.card{background:#151517;border:1px solid #2b2b2f;border-radius:12px;padding:1.25rem;margin-bottom:1rem}
h1{font-size:1.25rem;margin:0 0 1rem}
input,button{font-size:1rem}
input[type=text]{padding:.6rem;border-radius:8px;border:1px solid #2b2b2f;background:#0f0f11;color:#e8e8ea;width:7rem}
button{padding:.6rem 1rem;border:1px solid #2b2b2f;background:#1f1f23;color:#e8e8ea;border-radius:8px;cursor:pointer}
table{width:100%;border-collapse:collapse}
td,th{text-align:left;padding:.4rem;border-bottom:1px solid #2b2b2f}
pre{white-space:pre-wrap;word-break:break-word;background:#0f0f11;border:1px solid #2b2b2f;border-radius:8px;padding:.75rem}
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h1>videos</h1>
    <input id="id" type="text" placeholder="id"/>
    <input id="name" type="text" placeholder="name"/>
    <input id="views" type="text" placeholder="views"/>
    <input id="likes" type="text" placeholder="likes"/>
    <button data-m="PUT">Create</button>
    <button data-m="PATCH">Update</button>
    <button data-m="DELETE">Delete</button>
    <div id="out"></div>
  </div>
  <div class="card"><table><thead><tr><th>id</th><th>name</th><th>views</th><th>likes</th></tr></thead><tbody id="rows"></tbody></table></div>
  <p style="opacity:.7">API: <code>GET /videos</code>, <code>GET|PUT|PATCH|DELETE /video/:id</code></p>
</div>
<script>
function esc(s){ const d=document.createElement('div'); d.textContent=String(s); return d.innerHTML; }
async function refresh(){
  const res = await fetch('/videos');
  const list = await res.json().catch(()=>[]);
  document.getElementById('rows').innerHTML = list.map(v =>
    '<tr><td>'+v.id+'</td><td>'+esc(v.name)+'</td><td>'+v.views+'</td><td>'+v.likes+'</td></tr>').join('');
}
async function send(method){
  const id = document.getElementById('id').value.trim();
  const body = {};
  for (const k of ['name','views','likes']) {
    const v = document.getElementById(k).value.trim();
    if (v) body[k] = v;
  }
  const res = await fetch('/video/'+encodeURIComponent(id), {
    method,
    headers:{'Content-Type':'application/json'},
    body: method === 'DELETE' ? undefined : JSON.stringify(body)
  });
  const text = await res.text();
  document.getElementById('out').innerHTML = '<pre>'+res.status+' '+esc(text)+'</pre>';
  refresh();
}
document.querySelectorAll('button[data-m]').forEach(b => b.addEventListener('click', () => send(b.dataset.m)));
refresh();
</script>
</body>
</html>`
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	})
}
